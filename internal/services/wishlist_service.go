package services

import (
	"luffi/internal/domain"
	"luffi/internal/repos"
)

type WishlistService struct {
	Wish *repos.WishlistRepo
}

func NewWishlistService(wish *repos.WishlistRepo) *WishlistService {
	return &WishlistService{Wish: wish}
}

func (s *WishlistService) Save(sessionID, productID string) error {
	return s.Wish.Save(sessionID, productID)
}

func (s *WishlistService) Unsave(sessionID, productID string) error {
	return s.Wish.Unsave(sessionID, productID)
}

func (s *WishlistService) List(sessionID string) ([]domain.Product, error) {
	return s.Wish.List(sessionID)
}
