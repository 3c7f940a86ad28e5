// Copyright (c) 2026 Glowlab. All rights reserved.

/*
Package dashboard assembles the back-office landing page: catalog totals,
the review queues, and the most recently added products.
*/
package dashboard

import "time"

// Counts holds the catalog entity totals.
type Counts struct {
	Products    int `json:"products"`
	Brands      int `json:"brands"`
	Ingredients int `json:"ingredients"`
	Categories  int `json:"categories"`
	Tags        int `json:"tags"`
}

// ReviewItem is one entry in a needs-review queue.
type ReviewItem struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// ReviewQueue holds the entities still flagged as new. The product queue is
// just a count (the product list has an only_new filter for drilling in);
// brands and ingredients are listed by name. Zeroed when the review
// workflow is disabled.
type ReviewQueue struct {
	Products    int          `json:"products"`
	Brands      []ReviewItem `json:"brands"`
	Ingredients []ReviewItem `json:"ingredients"`
}

// RecentProduct is the trimmed product row shown in the landing-page list.
type RecentProduct struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	BrandName    *string   `json:"brand_name"`
	ThumbnailURL *string   `json:"thumbnail_url"`
	CreatedAt    time.Time `json:"created_at"`
}

// Overview is the full dashboard payload.
type Overview struct {
	Counts         Counts          `json:"counts"`
	ReviewQueue    ReviewQueue     `json:"review_queue"`
	RecentProducts []RecentProduct `json:"recent_products"`
}

// recentLimit caps the recent-products list.
const recentLimit = 5
