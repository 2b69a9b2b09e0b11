package reactfy

import (
	"testing"
)

func TestDropFilter(t *testing.T) {
	markup := `<div id="main"><noscript>x</noscript><p class="ad">ad</p><p data-keep="1" class="ad">keep</p><p>y</p></div>`
	cases := []struct {
		name   string
		exprs  []string
		out    string
		remove int
	}{
		{"none", nil, markup, 0},
		{"by tag", []string{"tag == 'noscript'"},
			`<div id="main"><p class="ad">ad</p><p data-keep="1" class="ad">keep</p><p>y</p></div>`, 1},
		{"by class and attribute", []string{"class == 'ad' && !has('data-keep')"},
			`<div id="main"><noscript>x</noscript><p data-keep="1" class="ad">keep</p><p>y</p></div>`, 1},
		{"by attribute value", []string{"attr('data-keep') == '1'", "id == 'nothing'"},
			`<div id="main"><noscript>x</noscript><p class="ad">ad</p><p>y</p></div>`, 1},
		{"subtree", []string{"id == 'main'"}, "", 1},
		{"non boolean", []string{"tag"}, markup, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			filter, err := NewDropFilter(c.exprs, nil)
			if err != nil {
				t.Errorf("%+v", err)
				return
			}
			root := parseMarkup(t, markup)
			if removed := filter.Apply(root); removed != c.remove {
				t.Errorf("expected %d removed, got %d", c.remove, removed)
			}
			compareOutput(t, c.out, mustRender(t, root))
		})
	}
	t.Run("invalid", func(t *testing.T) {
		if _, err := NewDropFilter([]string{"tag =="}, nil); err == nil {
			t.Error("expected error for invalid expression")
		}
	})
}
