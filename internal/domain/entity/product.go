package entity

import (
	"time"
)

type Category string

const (
	CategoryCourse         Category = "Course"
	CategoryDigitalProduct Category = "Digital Product"
	CategoryOffer          Category = "Offer"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryCourse, CategoryDigitalProduct, CategoryOffer:
		return true
	}
	return false
}

// MaxProductImages caps the gallery of a single listing.
const MaxProductImages = 5

// Product is a listed sellable item. ImageURL is the primary image shown in
// list views and always mirrors Images[0] while the gallery is non-empty.
type Product struct {
	ID          string    `json:"id" firestore:"id"`
	Title       string    `json:"title" firestore:"title"`
	Subtitle    string    `json:"subtitle,omitempty" firestore:"subtitle,omitempty"`
	Description string    `json:"description" firestore:"description"`
	Price       float64   `json:"price" firestore:"price"`
	Category    Category  `json:"category" firestore:"category"`
	ImageURL    string    `json:"image_url" firestore:"imageUrl"`
	Images      []string  `json:"images,omitempty" firestore:"images"`
	Features    []string  `json:"features,omitempty" firestore:"features"`
	PaymentLink string    `json:"payment_link" firestore:"paymentLink"`
	IsActive    bool      `json:"is_active" firestore:"isActive"`
	CreatedAt   time.Time `json:"created_at" firestore:"createdAt"`
}

// Draft is a product under edit. It carries no ID until the first submit
// persists it; nothing touches the gateway before then.
type Draft struct {
	ID          string   `json:"id,omitempty"`
	Title       string   `json:"title"`
	Subtitle    string   `json:"subtitle,omitempty"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Category    Category `json:"category"`
	ImageURL    string   `json:"image_url"`
	Images      []string `json:"images"`
	Features    []string `json:"features"`
	PaymentLink string   `json:"payment_link"`
	IsActive    *bool    `json:"is_active,omitempty"`
}
