package browse

import "testing"

func TestNewRowSetDirsBeforeFiles(t *testing.T) {
	dirs := []Entry{{Name: "Zeta"}, {Name: "alpha"}}
	files := []Entry{{Name: "readme.txt"}}

	rs := NewRowSet(dirs, files)

	if rs.Len() != 3 {
		t.Fatalf("Len = %d, want 3", rs.Len())
	}
	if rs.DirCount() != 2 {
		t.Fatalf("DirCount = %d, want 2", rs.DirCount())
	}
	want := []string{"alpha", "Zeta", "readme.txt"}
	for i, name := range want {
		if got := rs.At(i).Entry.Name; got != name {
			t.Fatalf("row %d = %q, want %q", i, got, name)
		}
	}
	for i := 0; i < rs.Len(); i++ {
		wantKind := KindDir
		if i >= rs.DirCount() {
			wantKind = KindFile
		}
		if rs.At(i).Kind != wantKind {
			t.Fatalf("row %d kind = %v, want %v", i, rs.At(i).Kind, wantKind)
		}
	}
}

func TestNewRowSetDirIndicesPrecedeFileIndices(t *testing.T) {
	dirs := []Entry{{Name: "zzz"}, {Name: "yyy"}}
	files := []Entry{{Name: "aaa"}, {Name: "bbb"}}

	rs := NewRowSet(dirs, files)

	// Directories win on position even when files sort before them by name.
	for i := 0; i < rs.DirCount(); i++ {
		if rs.At(i).Kind != KindDir {
			t.Fatalf("index %d expected dir, got %v", i, rs.At(i).Kind)
		}
	}
	for i := rs.DirCount(); i < rs.Len(); i++ {
		if rs.At(i).Kind != KindFile {
			t.Fatalf("index %d expected file, got %v", i, rs.At(i).Kind)
		}
	}
}

func TestNewRowSetEmptyGroups(t *testing.T) {
	rs := NewRowSet(nil, nil)
	if rs.Len() != 0 {
		t.Fatalf("empty listing produced %d rows", rs.Len())
	}

	rs = NewRowSet(nil, []Entry{{Name: "b"}, {Name: "A"}})
	if rs.Len() != 2 || rs.DirCount() != 0 {
		t.Fatalf("files-only listing: Len=%d DirCount=%d", rs.Len(), rs.DirCount())
	}
	if rs.At(0).Entry.Name != "A" || rs.At(1).Entry.Name != "b" {
		t.Fatalf("files-only listing not sorted: %q, %q", rs.At(0).Entry.Name, rs.At(1).Entry.Name)
	}
}

func TestNewRowSetKeepsDuplicateNamesAcrossGroups(t *testing.T) {
	rs := NewRowSet([]Entry{{Name: "data"}}, []Entry{{Name: "data"}})
	if rs.Len() != 2 {
		t.Fatalf("expected both duplicates, got %d rows", rs.Len())
	}
	if rs.At(0).Kind != KindDir || rs.At(1).Kind != KindFile {
		t.Fatalf("duplicate ordering wrong: %v, %v", rs.At(0).Kind, rs.At(1).Kind)
	}
}

func TestNewRowSetDoesNotMutateInputs(t *testing.T) {
	dirs := []Entry{{Name: "b"}, {Name: "a"}}
	files := []Entry{{Name: "z"}, {Name: "y"}}

	NewRowSet(dirs, files)

	if dirs[0].Name != "b" || files[0].Name != "z" {
		t.Fatalf("inputs were reordered: dirs=%v files=%v", dirs, files)
	}
}

func TestNewRowSetIdempotent(t *testing.T) {
	dirs := []Entry{{Name: "Gamma"}, {Name: "beta"}, {Name: "BETA"}}
	files := []Entry{{Name: "x.txt"}, {Name: "A.txt"}}

	first := NewRowSet(dirs, files)
	second := NewRowSet(dirs, files)

	if first.Len() != second.Len() {
		t.Fatalf("lengths differ: %d vs %d", first.Len(), second.Len())
	}
	for i := 0; i < first.Len(); i++ {
		if first.At(i) != second.At(i) {
			t.Fatalf("row %d differs between recomputations: %v vs %v", i, first.At(i), second.At(i))
		}
	}
}

func TestRowSetAtPanicsOutOfRange(t *testing.T) {
	rs := NewRowSet([]Entry{{Name: "a"}}, nil)
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for out-of-range index")
		}
	}()
	rs.At(1)
}
