package pipeline

import (
	"context"
	"strings"
	"testing"
)

func TestRenderHeading(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		depth     int
		fragments []string
		want      string
	}{
		{
			name:      "depth 2",
			depth:     2,
			fragments: []string{"My Section"},
			want:      `<h2 id="my-section"><a href="#my-section" class="heading-anchor">My Section</a></h2>`,
		},
		{
			name:      "fragments joined",
			depth:     3,
			fragments: []string{"Hello", "", ", ", "World"},
			want:      `<h3 id="hello-world"><a href="#hello-world" class="heading-anchor">Hello, World</a></h3>`,
		},
		{
			name:      "depth zero clamps to 1",
			depth:     0,
			fragments: []string{"A"},
			want:      `<h1 id="a"><a href="#a" class="heading-anchor">A</a></h1>`,
		},
		{
			name:      "depth 7 clamps to 1",
			depth:     7,
			fragments: []string{"A"},
			want:      `<h1 id="a"><a href="#a" class="heading-anchor">A</a></h1>`,
		},
		{
			name:      "text escaped",
			depth:     2,
			fragments: []string{"Tom & Jerry <3"},
			want:      `<h2 id="tom-jerry-3"><a href="#tom-jerry-3" class="heading-anchor">Tom &amp; Jerry &lt;3</a></h2>`,
		},
		{
			name:      "empty slug",
			depth:     2,
			fragments: []string{"???"},
			want:      `<h2 id=""><a href="#" class="heading-anchor">???</a></h2>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := RenderHeading(tt.depth, tt.fragments); got != tt.want {
				t.Errorf("RenderHeading(%d, %q) =\n%s\nwant\n%s", tt.depth, tt.fragments, got, tt.want)
			}
		})
	}
}

func TestHeadingLevel(t *testing.T) {
	t.Parallel()

	for depth, want := range map[int]int{-1: 1, 0: 1, 1: 1, 3: 3, 6: 6, 7: 1, 100: 1} {
		if got := HeadingLevel(depth); got != want {
			t.Errorf("HeadingLevel(%d) = %d, want %d", depth, got, want)
		}
	}
}

// ---------------------------------------------------------------------------
// Goldmark hook
// ---------------------------------------------------------------------------

func TestHeadingHook_Goldmark(t *testing.T) {
	t.Parallel()

	conv := NewGoldmarkConverter(ConverterOptions{RawHTML: true})

	tests := []struct {
		name     string
		markdown string
		want     string
	}{
		{
			name:     "atx heading",
			markdown: "## My Section",
			want:     `<h2 id="my-section"><a href="#my-section" class="heading-anchor">My Section</a></h2>`,
		},
		{
			name:     "setext heading",
			markdown: "Title\n=====",
			want:     `<h1 id="title"><a href="#title" class="heading-anchor">Title</a></h1>`,
		},
		{
			name:     "emphasis flattened",
			markdown: "### The *quick* **fox**",
			want:     `<h3 id="the-quick-fox"><a href="#the-quick-fox" class="heading-anchor">The quick fox</a></h3>`,
		},
		{
			name:     "code span flattened",
			markdown: "## Run `go test`",
			want:     `<h2 id="run-go-test"><a href="#run-go-test" class="heading-anchor">Run go test</a></h2>`,
		},
		{
			name:     "link text kept without nested anchor",
			markdown: "## See [docs](https://example.com)",
			want:     `<h2 id="see-docs"><a href="#see-docs" class="heading-anchor">See docs</a></h2>`,
		},
		{
			name:     "raw html contributes nothing",
			markdown: "## Hi <span>there</span>",
			want:     `<h2 id="hi-there"><a href="#hi-there" class="heading-anchor">Hi there</a></h2>`,
		},
		{
			name:     "backslash escape removed",
			markdown: "# Hi\\!",
			want:     `<h1 id="hi"><a href="#hi" class="heading-anchor">Hi!</a></h1>`,
		},
		{
			name:     "named entity decoded once",
			markdown: "## Tom &amp; Jerry",
			want:     `<h2 id="tom-jerry"><a href="#tom-jerry" class="heading-anchor">Tom &amp; Jerry</a></h2>`,
		},
		{
			name:     "copyright entity decoded",
			markdown: "## Fish &copy; 2024",
			want:     `<h2 id="fish-2024"><a href="#fish-2024" class="heading-anchor">Fish © 2024</a></h2>`,
		},
		{
			name:     "numeric reference decoded",
			markdown: "## A &#35; B",
			want:     `<h2 id="a-b"><a href="#a-b" class="heading-anchor">A # B</a></h2>`,
		},
		{
			name:     "code span keeps backslash",
			markdown: "## Use `a\\!`",
			want:     `<h2 id="use-a"><a href="#use-a" class="heading-anchor">Use a\!</a></h2>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := conv.ToHTML(context.Background(), tt.markdown)
			if err != nil {
				t.Fatalf("ToHTML() error = %v", err)
			}
			if strings.TrimSpace(got) != tt.want {
				t.Errorf("ToHTML(%q) =\n%s\nwant\n%s", tt.markdown, got, tt.want)
			}
		})
	}
}

func TestHeadingHook_Custom(t *testing.T) {
	t.Parallel()

	var gotDepth int
	var gotFragments []string
	conv := NewGoldmarkConverter(ConverterOptions{
		Heading: func(depth int, fragments []string) string {
			gotDepth = depth
			gotFragments = fragments
			return "<custom>"
		},
	})

	got, err := conv.ToHTML(context.Background(), "#### Four *em*")
	if err != nil {
		t.Fatalf("ToHTML() error = %v", err)
	}
	if strings.TrimSpace(got) != "<custom>" {
		t.Errorf("ToHTML() = %q, want <custom>", got)
	}
	if gotDepth != 4 {
		t.Errorf("depth = %d, want 4", gotDepth)
	}
	if strings.Join(gotFragments, "") != "Four em" {
		t.Errorf("fragments = %q, want text \"Four em\"", gotFragments)
	}
}
