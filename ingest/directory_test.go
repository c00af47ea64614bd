package ingest

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTreeProject(t *testing.T, tree, etymology, phonetics string) string {
	t.Helper()
	root := t.TempDir()
	if tree != "" {
		dir := filepath.Join(root, "tree")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatal(err)
		}
		if err := writeFile(filepath.Join(dir, "words.json"), tree); err != nil {
			t.Fatal(err)
		}
	}
	if etymology != "" {
		dir := filepath.Join(root, "etymology")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatal(err)
		}
		if err := writeFile(filepath.Join(dir, "transforms.json"), etymology); err != nil {
			t.Fatal(err)
		}
	}
	if phonetics != "" {
		dir := filepath.Join(root, "phonetics")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatal(err)
		}
		if err := writeFile(filepath.Join(dir, "sounds.json"), phonetics); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

func TestDirectoryIngestWithDerivatives(t *testing.T) {
	tree := `{
		"words": {
			"root-cap": {
				"word": "cap",
				"language": "Proto",
				"definition": "head",
				"derivatives": [
					{"lexis": {"word": "capita", "language": "Proto", "definition": "heads"}, "transforms": ["suffix-a"]}
				]
			},
			"child-captain": {
				"word": "captain",
				"language": "Daughter",
				"definition": "leader",
				"etymology": {"etymons": [{"etymon": "root-cap"}]}
			}
		}
	}`
	etymology := `{
		"transforms": {
			"suffix-a": {"transforms": [{"postfix": {"value": "a"}}]}
		}
	}`
	root := writeTreeProject(t, tree, etymology, "")

	lt, err := Directory(root, nil, nil)
	if err != nil {
		t.Fatalf("Directory: %v", err)
	}
	if lt.Len() != 3 {
		t.Fatalf("got %d nodes, want 3 (root, derived, child)", lt.Len())
	}
	if _, ok := lt.GetByID("root-cap-autoderive-0"); !ok {
		t.Error("missing lifted derivative root-cap-autoderive-0")
	}
	if err := lt.Compute(); err != nil {
		t.Fatalf("Compute: %v", err)
	}
}

func TestDirectoryDuplicateKeyIsFatal(t *testing.T) {
	treeA := `{"words": {"dup": {"word": "a", "definition": "a"}}}`
	root := writeTreeProject(t, treeA, "", "")
	dir := filepath.Join(root, "tree")
	if err := writeFile(filepath.Join(dir, "more.json"), `{"words": {"dup": {"word": "b", "definition": "b"}}}`); err != nil {
		t.Fatal(err)
	}

	if _, err := Directory(root, nil, nil); err == nil {
		t.Error("expected a fatal error for a duplicate tree key across files")
	}
}

func TestDirectoryMissingTreeDirIsFatal(t *testing.T) {
	root := t.TempDir()
	if _, err := Directory(root, nil, nil); err == nil {
		t.Error("expected an error when no tree data exists")
	}
}

func TestDirectoryDefaultLoanwordTransform(t *testing.T) {
	tree := `{
		"words": {
			"src": {"word": "word", "definition": "loaned word"},
			"dst": {"word": "wurd", "definition": "borrowed", "etymology": {"etymons": [{"etymon": "src"}]}}
		}
	}`
	root := writeTreeProject(t, tree, "", "")

	lt, err := Directory(root, nil, nil)
	if err != nil {
		t.Fatalf("Directory: %v", err)
	}
	if err := lt.Compute(); err != nil {
		t.Fatalf("Compute: %v", err)
	}
}
