// Package entity contains the core business objects of the storefront.
package entity

import (
	"time"
)

// Product is a catalog entry as stored by either backend.
type Product struct {
	ID          string     `json:"id,omitempty" firestore:"-"`                // Backend-assigned id: list position locally, document id remotely.
	Title       string     `json:"title" firestore:"title"`                   // Display name; part of the cart identity.
	Description string     `json:"description" firestore:"description"`       // Free text searched alongside the title.
	Images      []string   `json:"images" firestore:"images"`                 // Image references; the first is the thumbnail.
	Price       int64      `json:"price" firestore:"price"`                   // Unit price in whole currency units.
	Discount    float64    `json:"discount" firestore:"discount"`             // Informational only; never applied to the price.
	Published   bool       `json:"published" firestore:"published"`           // Admin flag; not enforced by the storefront.
	Group       string     `json:"group" firestore:"group"`                   // Top-level category.
	Subcategory string     `json:"subcategory" firestore:"subcategory"`       // Optional sub-category under Group.
	CreatedAt   *time.Time `json:"createdAt,omitempty" firestore:"createdAt"` // Creation time; nil for legacy records.
}

// Thumbnail returns the first image reference or "".
func (p *Product) Thumbnail() string {
	if len(p.Images) == 0 {
		return ""
	}

	return p.Images[0]
}

// Clone returns a deep copy of the product.
func (p Product) Clone() Product {
	out := p
	if p.Images != nil {
		out.Images = append([]string(nil), p.Images...)
	}
	if p.CreatedAt != nil {
		t := *p.CreatedAt
		out.CreatedAt = &t
	}

	return out
}
