package roster

// Canonical field names.
const (
	FieldName        = "name"
	FieldFullName    = "full_name"
	FieldNation      = "nation"
	FieldNationCode  = "nation_code"
	FieldDate        = "date"
	FieldDateOfBirth = "date_of_birth"
	FieldTeam        = "team"
	FieldRoles       = "roles"
	FieldImage       = "image"
	FieldDescription = "description"
	FieldLeague      = "league"
	FieldLogoLeague  = "logo_league"
	FieldTier        = "tier"
	FieldHeros       = "heros"
)

// fieldAliases lists, per canonical field, the source keys accepted for it in
// priority order.
var fieldAliases = map[string][]string{
	FieldName:        {"name", "nama", "player_name"},
	FieldFullName:    {"full_name", "nama_lengkap", "fullname"},
	FieldNation:      {"nation", "negara", "country"},
	FieldNationCode:  {"nation_code", "kode_negara", "country_code"},
	FieldDate:        {"date", "date_of_join", "join_date", "tanggal_masuk"},
	FieldDateOfBirth: {"date_of_birth", "dob", "tanggal_lahir"},
	FieldTeam:        {"team", "tim", "club"},
	FieldRoles:       {"roles", "role", "posisi"},
	FieldImage:       {"image", "img", "foto"},
	FieldDescription: {"description", "deskripsi", "desc"},
	FieldLeague:      {"league", "liga"},
	FieldLogoLeague:  {"logo_league", "logo_liga"},
	FieldTier:        {"tier", "tingkatan"},
	FieldHeros:       {"heros", "heroes", "hero"},
}

// Aliases returns the accepted source keys for a canonical field. Unknown
// fields resolve only from their own name.
func Aliases(field string) []string {
	if aliases, ok := fieldAliases[field]; ok {
		return aliases
	}
	return []string{field}
}

// Resolve returns the first non-empty value stored under any alias of field.
func Resolve(raw map[string]any, field string) (any, bool) {
	for _, key := range Aliases(field) {
		value, ok := raw[key]
		if ok && !isEmpty(value) {
			return value, true
		}
	}
	return nil, false
}

func isEmpty(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case bool:
		return !v
	case float64:
		return v == 0
	case int:
		return v == 0
	case int64:
		return v == 0
	case []any:
		return len(v) == 0
	case map[string]any:
		return len(v) == 0
	default:
		return false
	}
}
