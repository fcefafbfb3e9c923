package bench

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseHeader(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		want     Header
		wantBody string
		wantErr  bool
	}{
		{
			name: "valid header",
			input: `# Source: https://example.com/listing
# Title: Listing 4
# Author: Jane Doe

elif moo:
	that()`,
			want: Header{
				Source: "https://example.com/listing",
				Title:  "Listing 4",
				Author: "Jane Doe",
			},
			wantBody: "elif moo:\n\tthat()",
		},
		{
			name:     "keys are case insensitive",
			input:    "#source: local\n#TITLE: t\nbody",
			want:     Header{Source: "local", Title: "t"},
			wantBody: "body",
		},
		{
			name:     "header only",
			input:    "# Source: local\n",
			want:     Header{Source: "local"},
			wantBody: "",
		},
		{
			name: "missing source",
			input: `# Title: Listing

Hello.`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, body, err := ParseHeader(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseHeader() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				return
			}
			if got != tt.want {
				t.Errorf("ParseHeader() header = %+v, want %+v", got, tt.want)
			}
			if body != tt.wantBody {
				t.Errorf("ParseHeader() body = %q, want %q", body, tt.wantBody)
			}
		})
	}
}

func TestLoadDocument(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "listing_4.txt")
	content := `# Source: https://example.com
# Title: Test Title
# Author: Test Author

x != this`

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	doc, err := LoadDocument(path)
	if err != nil {
		t.Fatalf("LoadDocument() error = %v", err)
	}

	if doc.ID != "listing_4" {
		t.Errorf("ID = %q, want %q", doc.ID, "listing_4")
	}
	if doc.Author != "Test Author" {
		t.Errorf("Author = %q, want %q", doc.Author, "Test Author")
	}
	if doc.Text != "x != this" {
		t.Errorf("Text = %q, want %q", doc.Text, "x != this")
	}
}

func TestLoadCorpus(t *testing.T) {
	dir := t.TempDir()

	for _, name := range []string{"a.txt", "b.txt"} {
		content := "# Source: https://example.com\n\nHello."
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}

	// Ignored: wrong extension and subdirectory
	if err := os.WriteFile(filepath.Join(dir, "README.md"), []byte("# Readme"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.Mkdir(filepath.Join(dir, "nested.txt"), 0755); err != nil {
		t.Fatal(err)
	}

	docs, err := LoadCorpus(dir)
	if err != nil {
		t.Fatalf("LoadCorpus() error = %v", err)
	}

	if len(docs) != 2 {
		t.Errorf("got %d documents, want 2", len(docs))
	}
}

func TestLoadCorpus_BadFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "bad.txt"), []byte("no header"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadCorpus(dir); err == nil {
		t.Error("expected error for file without Source header")
	}
}
