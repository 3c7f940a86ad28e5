// Copyright (c) 2026 Glowlab. All rights reserved.

package dashboard

import "context"

type Repository interface {
	Counts(context context.Context) (Counts, error)
	ReviewQueue(context context.Context) (ReviewQueue, error)
	RecentProducts(context context.Context, limit int) ([]RecentProduct, error)
}
