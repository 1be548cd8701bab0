package browse

// RowKind tags a combined-list row as either a directory or a file.
type RowKind int

const (
	KindDir RowKind = iota
	KindFile
)

// Row is one position of the combined list: an entry plus the kind the
// renderer must dispatch on.
type Row struct {
	Kind  RowKind
	Entry Entry
}

// RowSet is the merged, ordered view over a listing: directories first, then
// files, each group sorted case-insensitively by name. It is derived state —
// rebuilt wholesale whenever the listing changes, never mutated in place.
type RowSet struct {
	rows     []Row
	dirCount int
}

// NewRowSet sorts both groups (on copies, the inputs are left untouched) and
// concatenates them directories-first. Directories always precede files
// regardless of name; duplicate names across the groups are kept as-is.
func NewRowSet(dirs, files []Entry) RowSet {
	rows := make([]Row, 0, len(dirs)+len(files))
	for _, e := range sortedCopy(dirs) {
		rows = append(rows, Row{Kind: KindDir, Entry: e})
	}
	for _, e := range sortedCopy(files) {
		rows = append(rows, Row{Kind: KindFile, Entry: e})
	}
	return RowSet{rows: rows, dirCount: len(dirs)}
}

// Len reports the total row count. The viewport addresses rows exclusively
// through indices in [0, Len()).
func (rs RowSet) Len() int { return len(rs.rows) }

// DirCount reports how many leading rows are directories.
func (rs RowSet) DirCount() int { return rs.dirCount }

// At returns the row at index i. Callers must keep i within [0, Len());
// out-of-range indices are a caller bug and panic like any slice access.
func (rs RowSet) At(i int) Row { return rs.rows[i] }

// Names returns the display names in row order, used as the filter corpus.
func (rs RowSet) Names() []string {
	names := make([]string, len(rs.rows))
	for i, r := range rs.rows {
		names[i] = r.Entry.Name
	}
	return names
}
