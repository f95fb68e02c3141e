package fetch

import "testing"

func TestItemHTMLResolution(t *testing.T) {
	tests := []struct {
		name string
		item Item
		want string
	}{
		{
			name: "content wins over encoded",
			item: Item{Content: "<p>content</p>", ContentEncoded: "<p>encoded</p>"},
			want: "<p>content</p>",
		},
		{
			name: "encoded when content empty",
			item: Item{ContentEncoded: "<p>encoded</p>"},
			want: "<p>encoded</p>",
		},
		{
			name: "placeholder when both empty",
			item: Item{Description: "description does not count"},
			want: NoContentPlaceholder,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.item.HTML(); got != tc.want {
				t.Errorf("HTML() = %q, want %q", got, tc.want)
			}
		})
	}
}
