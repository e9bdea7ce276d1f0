package layout

import "github.com/mcpeakdev/rpdf/internal/imaging"

// CollectImages walks the box tree and returns every distinct decoded
// image keyed by its content hash, deduplicating by source hash to avoid
// embedding the same image more than once when it is reused in the
// document.
func CollectImages(root *Box) map[string]*imaging.Decoded {
	out := map[string]*imaging.Decoded{}
	if root == nil {
		return out
	}
	var walk func(b *Box)
	walk = func(b *Box) {
		if b.Kind == KindImage && b.Image != nil {
			out[b.ImageKey] = b.Image
			return
		}
		for _, c := range b.Children {
			walk(c)
		}
		for _, row := range b.Rows {
			for _, c := range row {
				walk(c)
			}
		}
	}
	walk(root)
	return out
}
