package handlers

import (
	"luffi/internal/repos"
	"luffi/internal/services"

	"github.com/jmoiron/sqlx"
)

type Deps struct {
	HomeHandler       *HomeHandler
	ShopHandler       *ShopHandler
	ProductHandler    *ProductHandler
	CartHandler       *CartHandler
	NewsletterHandler *NewsletterHandler
	WishlistHandler   *WishlistHandler
	AdminHandler      *AdminHandler

	CartSvc *services.CartService
}

func NewDeps(db *sqlx.DB, cartSvc *services.CartService, newsSvc *services.NewsletterService) (*Deps, error) {
	prodRepo := repos.NewProductRepo(db)
	wishRepo := repos.NewWishlistRepo(db)
	subsRepo := repos.NewNewsletterRepo(db)

	catalogSvc, err := services.NewCatalogService(prodRepo)
	if err != nil {
		return nil, err
	}
	wishSvc := services.NewWishlistService(wishRepo)

	return &Deps{
		HomeHandler:       &HomeHandler{Catalog: catalogSvc},
		ShopHandler:       &ShopHandler{Catalog: catalogSvc},
		ProductHandler:    &ProductHandler{Catalog: catalogSvc},
		CartHandler:       &CartHandler{Cart: cartSvc, Catalog: catalogSvc},
		NewsletterHandler: &NewsletterHandler{News: newsSvc},
		WishlistHandler:   &WishlistHandler{Wish: wishSvc},
		AdminHandler:      &AdminHandler{Catalog: catalogSvc, Subs: subsRepo},
		CartSvc:           cartSvc,
	}, nil
}
