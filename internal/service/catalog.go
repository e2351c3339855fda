package service

import (
	"context"
	"fmt"

	"storefront-backend/internal/client"
)

// CatalogService is pure pass-through to the platform's catalog and cart.
type CatalogService interface {
	ListProducts(ctx context.Context) ([]map[string]any, error)
	GetProduct(ctx context.Context, productID string) (map[string]any, error)
	GetCart(ctx context.Context, cartID string) (map[string]any, error)
	AddCartItem(ctx context.Context, cartID, productID string, quantity int) (map[string]any, error)
}

type catalogServiceImpl struct {
	commerceClient client.CommerceClient
}

func NewCatalogService(commerceClient client.CommerceClient) CatalogService {
	return &catalogServiceImpl{commerceClient: commerceClient}
}

func (s *catalogServiceImpl) ListProducts(ctx context.Context) ([]map[string]any, error) {
	products, err := s.commerceClient.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

func (s *catalogServiceImpl) GetProduct(ctx context.Context, productID string) (map[string]any, error) {
	product, err := s.commerceClient.GetProduct(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	return product, nil
}

func (s *catalogServiceImpl) GetCart(ctx context.Context, cartID string) (map[string]any, error) {
	cart, err := s.commerceClient.GetCart(ctx, cartID)
	if err != nil {
		return nil, fmt.Errorf("get cart: %w", err)
	}
	return cart, nil
}

func (s *catalogServiceImpl) AddCartItem(ctx context.Context, cartID, productID string, quantity int) (map[string]any, error) {
	cart, err := s.commerceClient.AddCartItem(ctx, cartID, productID, quantity)
	if err != nil {
		return nil, fmt.Errorf("add cart item: %w", err)
	}
	return cart, nil
}
