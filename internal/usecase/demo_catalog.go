package usecase

import "dpmarketpro/internal/domain/entity"

// demoProducts is the fixed demonstration catalog shown whenever the live
// catalog is unavailable or empty. Order is significant: fallback listings
// keep declaration order.
var demoProducts = []entity.Product{
	{
		ID:          "1",
		Title:       "AI Faceless YouTube Mastery Course",
		Description: "Learn how to build a million-subscriber YouTube channel without ever showing your face. Includes prompt engineering and editing secrets.",
		Price:       999,
		ImageURL:    "https://images.unsplash.com/photo-1611162617474-5b21e879e113?auto=format&fit=crop&q=80&w=800",
		Category:    entity.CategoryCourse,
		PaymentLink: "https://rzp.io/l/demo1",
		IsActive:    true,
		Features:    []string{"50+ Video Lessons", "Faceless Strategy PDF", "Niche Selection Guide"},
	},
	{
		ID:          "2",
		Title:       "Lifetime AI Tools Bundle",
		Description: "Get access to 500+ premium AI prompts and tools to automate your business workflow instantly.",
		Price:       1499,
		ImageURL:    "https://images.unsplash.com/photo-1677442136019-21780ecad995?auto=format&fit=crop&q=80&w=800",
		Category:    entity.CategoryDigitalProduct,
		PaymentLink: "https://rzp.io/l/demo2",
		IsActive:    true,
		Features:    []string{"500+ Prompts", "Automations Guide", "Lifetime Updates"},
	},
	{
		ID:          "3",
		Title:       "Video Editing for Beginners",
		Description: "The ultimate guide to Premiere Pro and DaVinci Resolve for total beginners. Edit like a pro in 30 days.",
		Price:       799,
		ImageURL:    "https://images.unsplash.com/photo-1574717024653-61fd2cf4d44d?auto=format&fit=crop&q=80&w=800",
		Category:    entity.CategoryCourse,
		PaymentLink: "https://rzp.io/l/demo3",
		IsActive:    true,
		Features:    []string{"Transition Packs", "Color Grading LUTs", "Project Files"},
	},
}

// demoCatalog returns fresh copies so callers can never mutate the fixed set.
func demoCatalog(keep func(*entity.Product) bool) []*entity.Product {
	var out []*entity.Product
	for i := range demoProducts {
		p := demoProducts[i]
		if keep == nil || keep(&p) {
			out = append(out, &p)
		}
	}
	return out
}
