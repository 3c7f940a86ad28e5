// Copyright (c) 2026 Glowlab. All rights reserved.

package tag

import "context"

type Repository interface {
	ListTags(context context.Context, f Filter) ([]*Tag, error)
	GetTag(context context.Context, id int) (*Tag, error)
	CreateTag(context context.Context, t *Tag) error
	UpdateTag(context context.Context, t *Tag) error
	DeleteTag(context context.Context, id int) error
	ExistsByName(context context.Context, name string, excludeID int) (bool, error)
}
