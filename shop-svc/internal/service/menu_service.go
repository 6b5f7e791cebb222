package service

import (
	"fmt"

	"warung-qris/shop-svc/internal/domain"
)

const (
	ImageBasePath   = "/static/images/"
	MenuPlaceholder = ImageBasePath + "menu-placeholder.svg"
)

var ErrItemNotFound = fmt.Errorf("menu item %w", domain.ErrNotFound)

type MenuService struct {
	repo MenuRepository
}

func NewMenuService(repo MenuRepository) *MenuService {
	return &MenuService{repo: repo}
}

func (s *MenuService) Menu() (domain.Menu, error) {
	catalog, err := s.catalog()
	if err != nil {
		return nil, err
	}
	return catalog.Menu, nil
}

func (s *MenuService) Lookup(id int) (*domain.MenuItem, error) {
	catalog, err := s.catalog()
	if err != nil {
		return nil, err
	}
	item, ok := catalog.Lookup(id)
	if !ok {
		return nil, ErrItemNotFound
	}
	return &item, nil
}

func (s *MenuService) catalog() (*domain.Catalog, error) {
	menu, err := s.repo.LoadMenu()
	if err != nil {
		return nil, fmt.Errorf("load menu: %w", err)
	}
	for _, items := range menu {
		for i := range items {
			items[i].ImagePath = ImagePath(items[i].Image)
		}
	}
	return domain.NewCatalog(menu), nil
}

func ImagePath(image string) string {
	if image == "" {
		return MenuPlaceholder
	}
	return ImageBasePath + image
}
