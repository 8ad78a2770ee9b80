package model

import (
	"bytes"
	"errors"
	"strconv"
	"time"
)

// ErrCaloriesNotNumeric is returned when a calories value cannot be parsed as an integer.
var ErrCaloriesNotNumeric = errors.New("calories must be a number")

// Calories is an integer that unmarshals from either a JSON number or a numeric
// string ("120"), since clients send both forms. Non-numeric input is rejected.
type Calories int

// UnmarshalJSON implements json.Unmarshaler.
func (c *Calories) UnmarshalJSON(data []byte) error {
	s := string(bytes.Trim(data, `"`))
	if s == "null" || s == "" {
		*c = 0
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return ErrCaloriesNotNumeric
	}
	*c = Calories(n)
	return nil
}

// Recipe represents a recipe record. AuthorName is a snapshot of the owner's
// name at creation time and is not kept in sync with later changes.
type Recipe struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"userId"`
	Title        string    `json:"title"`
	Ingredients  string    `json:"ingredients"`
	Instructions string    `json:"instructions"`
	Calories     int       `json:"calories"`
	IsFavorite   bool      `json:"isFavorite"`
	IsPublic     bool      `json:"isPublic"`
	AuthorName   string    `json:"authorName"`
	CreatedAt    time.Time `json:"createdAt"`
}

// CreateRecipeRequest represents a recipe creation request.
type CreateRecipeRequest struct {
	Title        string   `json:"title"`
	Ingredients  string   `json:"ingredients"`
	Instructions string   `json:"instructions"`
	Calories     Calories `json:"calories"`
	IsPublic     bool     `json:"isPublic"`
}

// UpdateRecipeRequest represents a partial recipe update. String fields and
// Calories overwrite only when non-zero; the boolean fields are pointers so an
// explicit false is distinguishable from an omitted field.
type UpdateRecipeRequest struct {
	Title        string   `json:"title"`
	Ingredients  string   `json:"ingredients"`
	Instructions string   `json:"instructions"`
	Calories     Calories `json:"calories"`
	IsFavorite   *bool    `json:"isFavorite"`
	IsPublic     *bool    `json:"isPublic"`
}

// MessageResponse is a simple {msg} body, used by delete and error-free
// informational responses.
type MessageResponse struct {
	Msg string `json:"msg"`
}
