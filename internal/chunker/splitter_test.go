package chunker

import (
	"strings"
	"testing"

	"github.com/veredicto-labs/autos/internal/core/domain"
)

func TestNew(t *testing.T) {
	t.Run("default values", func(t *testing.T) {
		s := New()
		if s.chunkSize != DefaultChunkSize {
			t.Errorf("expected chunkSize %d, got %d", DefaultChunkSize, s.chunkSize)
		}
		if s.overlap != DefaultOverlap {
			t.Errorf("expected overlap %d, got %d", DefaultOverlap, s.overlap)
		}
	})

	t.Run("custom sizes", func(t *testing.T) {
		s := New(WithChunkSize(500), WithOverlap(100))
		if s.chunkSize != 500 || s.overlap != 100 {
			t.Errorf("expected 500/100, got %d/%d", s.chunkSize, s.overlap)
		}
	})

	t.Run("overlap exceeding chunk size is reduced", func(t *testing.T) {
		s := New(WithChunkSize(100), WithOverlap(150))
		if s.overlap >= s.chunkSize {
			t.Error("overlap should be reduced when it exceeds chunk size")
		}
	})

	t.Run("non-positive values ignored", func(t *testing.T) {
		s := New(WithChunkSize(0), WithOverlap(-1))
		if s.chunkSize != DefaultChunkSize || s.overlap != DefaultOverlap {
			t.Errorf("expected defaults, got %d/%d", s.chunkSize, s.overlap)
		}
	})
}

func TestSplit_Empty(t *testing.T) {
	s := New()
	if chunks := s.Split("", domain.ChunkMetadata{}); chunks != nil {
		t.Errorf("expected nil for empty input, got %d chunks", len(chunks))
	}
}

func TestSplit_ShortText(t *testing.T) {
	s := New()
	chunks := s.Split("texto curto", domain.ChunkMetadata{})
	if len(chunks) != 1 {
		t.Fatalf("expected 1 chunk, got %d", len(chunks))
	}
	if chunks[0].Content != "texto curto" {
		t.Errorf("unexpected content: %q", chunks[0].Content)
	}
	if chunks[0].ID == "" {
		t.Error("expected non-empty chunk ID")
	}
}

// A 3000-character text with the default 1000/200 settings must produce
// 4 chunks, each at most 1000 characters, each overlapping its
// predecessor by exactly 200 characters.
func TestSplit_DefaultSettings3000Chars(t *testing.T) {
	text := strings.Repeat("a1b2c3d4e5", 300) // 3000 chars
	s := New()
	chunks := s.Split(text, domain.ChunkMetadata{})

	if len(chunks) != 4 {
		t.Fatalf("expected 4 chunks, got %d", len(chunks))
	}
	for i, c := range chunks {
		if len(c.Content) > 1000 {
			t.Errorf("chunk %d exceeds 1000 chars: %d", i, len(c.Content))
		}
		if i == 0 {
			continue
		}
		prev := chunks[i-1].Content
		if prev[len(prev)-200:] != c.Content[:200] {
			t.Errorf("chunk %d does not overlap its predecessor by 200 chars", i)
		}
	}
}

// Concatenating the chunks, skipping each chunk's leading overlap,
// reconstructs the original text.
func TestSplit_Reconstruction(t *testing.T) {
	tests := []struct {
		name    string
		size    int
		overlap int
		length  int
	}{
		{"exact multiple", 100, 20, 800},
		{"with remainder", 100, 20, 837},
		{"single chunk", 100, 20, 50},
		{"smaller than overlap", 100, 20, 10},
		{"no overlap", 100, 0, 450},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			text := strings.Repeat("x", tc.length-1) + "z"
			s := New(WithChunkSize(tc.size), WithOverlap(tc.overlap))
			chunks := s.Split(text, domain.ChunkMetadata{})

			var b strings.Builder
			for i, c := range chunks {
				content := c.Content
				if i > 0 {
					content = content[tc.overlap:]
				}
				b.WriteString(content)
			}
			if b.String() != text {
				t.Errorf("reconstruction mismatch: got %d chars, want %d",
					b.Len(), len(text))
			}
		})
	}
}

// Chunk count follows ceil((len - overlap) / (size - overlap)) whenever
// the text is longer than one chunk.
func TestSplit_ChunkCount(t *testing.T) {
	tests := []struct {
		length int
		want   int
	}{
		{1000, 1},
		{1001, 2},
		{1800, 2},
		{1801, 3},
		{3000, 4},
		{5000, 6},
	}

	s := New()
	for _, tc := range tests {
		text := strings.Repeat("k", tc.length)
		if got := len(s.Split(text, domain.ChunkMetadata{})); got != tc.want {
			t.Errorf("length %d: expected %d chunks, got %d", tc.length, tc.want, got)
		}
	}
}

func TestSplit_MetadataInherited(t *testing.T) {
	meta := domain.ChunkMetadata{
		Source:     "/autos/hc-123.pdf",
		CaseType:   "Habeas Corpus",
		CaseStatus: "Em trâmite",
	}
	s := New(WithChunkSize(100), WithOverlap(20))
	chunks := s.Split(strings.Repeat("p", 500), meta)

	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(chunks))
	}
	seen := make(map[string]bool)
	for i, c := range chunks {
		if c.Metadata != meta {
			t.Errorf("chunk %d metadata differs from document metadata", i)
		}
		if c.Position != i {
			t.Errorf("chunk %d has position %d", i, c.Position)
		}
		if seen[c.ID] {
			t.Errorf("duplicate chunk ID %s", c.ID)
		}
		seen[c.ID] = true
	}
}

func TestSplit_AccentedText(t *testing.T) {
	// Multi-byte characters must never be split mid-rune.
	text := strings.Repeat("ação penal é pública ", 100)
	s := New(WithChunkSize(100), WithOverlap(20))
	for i, c := range s.Split(text, domain.ChunkMetadata{}) {
		if !strings.Contains(text, c.Content) {
			t.Errorf("chunk %d is not a contiguous slice of the input", i)
		}
	}
}
