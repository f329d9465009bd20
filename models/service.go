package models

// Service is an offering listed in the salon configuration. IDs are
// unique within the services sequence; names are not.
type Service struct {
	ID          string  `json:"id" validate:"required"`
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" validate:"min=0"`
}

// ServiceUpdate carries a partial update; nil fields are left as-is.
type ServiceUpdate struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" validate:"omitempty,min=0"`
}

// Apply merges the non-nil fields of u into s. The ID never changes.
func (s *Service) Apply(u ServiceUpdate) {
	if u.Name != nil {
		s.Name = *u.Name
	}
	if u.Description != nil {
		s.Description = *u.Description
	}
	if u.Price != nil {
		s.Price = *u.Price
	}
}
