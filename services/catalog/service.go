package catalog

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/MarcGrol/shopfront/lib/myerrors"
)

type Service struct {
	products []Product
}

func NewService() *Service {
	return newService(products)
}

func newService(items []Product) *Service {
	return &Service{
		products: items,
	}
}

// List filters on title and category, then sorts. An unknown sort key sorts by name.
func (s *Service) List(c context.Context, q Query) []Product {
	search := strings.ToLower(strings.TrimSpace(q.Search))
	category := strings.TrimSpace(q.Category)

	result := []Product{}
	for _, p := range s.products {
		if search != "" && !strings.Contains(strings.ToLower(p.Title), search) {
			continue
		}
		if category != "" && category != allCategories && p.Category != category {
			continue
		}
		result = append(result, p)
	}

	sort.SliceStable(result, func(i, j int) bool {
		a, b := result[i], result[j]
		switch q.Sort {
		case SortByPriceLow:
			return a.Price.LessThan(b.Price)
		case SortByPriceHigh:
			return a.Price.GreaterThan(b.Price)
		case SortByRating:
			return a.Rating > b.Rating
		default:
			return strings.ToLower(a.Title) < strings.ToLower(b.Title)
		}
	})

	return result
}

func (s *Service) Categories(c context.Context) []string {
	seen := map[string]bool{}
	categories := []string{}
	for _, p := range s.products {
		if p.Category != "" && !seen[p.Category] {
			seen[p.Category] = true
			categories = append(categories, p.Category)
		}
	}
	return categories
}

func (s *Service) Get(c context.Context, productUID string) (Product, error) {
	for _, p := range s.products {
		if p.ID == productUID {
			return p, nil
		}
	}
	return Product{}, myerrors.NewNotFoundError(fmt.Errorf("Product %s not found", productUID))
}

// Related returns up to four products from the same category. Without any, it falls back to other products in catalog order.
func (s *Service) Related(c context.Context, productUID string) ([]Product, error) {
	current, err := s.Get(c, productUID)
	if err != nil {
		return nil, err
	}

	sameCategory := []Product{}
	others := []Product{}
	for _, p := range s.products {
		if p.ID == current.ID {
			continue
		}
		if current.Category != "" && p.Category == current.Category {
			sameCategory = append(sameCategory, p)
		} else {
			others = append(others, p)
		}
	}

	if len(sameCategory) > 0 {
		return limit(sameCategory, maxRelatedResults), nil
	}
	return limit(others, maxRelatedResults), nil
}

func limit(items []Product, max int) []Product {
	if len(items) > max {
		return items[:max]
	}
	return items
}
