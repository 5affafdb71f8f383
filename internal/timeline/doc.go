// Package timeline establishes the display order of normalized roster records.
//
// Two policies exist: OldestFirst (ascending join date, sentinel dates first)
// and NewestFirstMissingLast (dated records newest first, undated records
// last). Both break remaining ties on name and finally on input position so
// the order is reproducible.
package timeline
