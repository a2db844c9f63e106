package main

import (
	"context"
	"log"
	"math/rand"
	"time"

	"github.com/johnsmera/checkout/internal/config"
	"github.com/johnsmera/checkout/internal/domain/model"
	"github.com/johnsmera/checkout/internal/handler"
	"github.com/johnsmera/checkout/internal/infra/db"
	infraRepo "github.com/johnsmera/checkout/internal/infra/repository"
	"github.com/johnsmera/checkout/internal/server"
	"github.com/johnsmera/checkout/internal/usecase"
	auth "github.com/johnsmera/checkout/internal/usecase/auth_usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

type uuidGenerator struct{}

func (g *uuidGenerator) NewID() string {
	return uuid.NewString()
}

type realClock struct{}

func (c *realClock) Now() time.Time {
	return time.Now()
}

type realSleeper struct{}

func (s *realSleeper) Sleep(d time.Duration) {
	time.Sleep(d)
}

type jwtIssuer struct {
	secret    []byte
	accessTTL time.Duration
}

func (i *jwtIssuer) Issue(userID string, now time.Time) (string, time.Time, error) {
	expiresAt := now.Add(i.accessTTL)

	claims := jwt.MapClaims{
		"sub": userID,
		"iat": now.Unix(),
		"exp": expiresAt.Unix(),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, err
	}

	return signed, expiresAt, nil
}

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	gormDB, err := db.Connect(cfg)
	if err != nil {
		log.Fatal(err)
	}
	if err := gormDB.AutoMigrate(&model.User{}, &model.Product{}); err != nil {
		log.Fatal(err)
	}

	idGen := &uuidGenerator{}
	clock := &realClock{}
	sleeper := &realSleeper{}
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	userRepo := infraRepo.NewUserGormRepository(gormDB)
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	cartRepo := infraRepo.NewCartMemoryRepository(idGen)
	orderRepo := infraRepo.NewOrderMemoryRepository(idGen, clock)

	if err := seedProducts(productRepo); err != nil {
		log.Fatal(err)
	}

	hasher := auth.NewBcryptPasswordHasher(12)
	verifier := auth.NewBcryptPasswordVerifier()
	issuer := &jwtIssuer{
		secret:    []byte(cfg.JWTSecret),
		accessTTL: 15 * time.Minute,
	}

	registerUC := auth.NewRegisterUserUsecase(userRepo, hasher, idGen, clock)
	loginUC := auth.NewLoginUsecase(userRepo, verifier, issuer, clock)
	productUC := usecase.NewProductUsecase(productRepo)
	cartUC := usecase.NewCartUsecase(cartRepo, productRepo)

	// the checkout flow gets a clear capability, not the cart store itself
	checkoutUC := usecase.NewCheckoutUsecase(
		orderRepo,
		cartRepo,
		clock,
		rng,
		sleeper,
		func(ctx context.Context, userID string) error {
			return cartRepo.Clear(ctx, userID)
		},
	)

	h := server.Handlers{
		Auth:    handler.NewAuthHandler(registerUC, loginUC),
		Product: handler.NewProductHandler(productUC),
		Cart:    handler.NewCartHandler(cartUC),
		Order:   handler.NewOrderHandler(checkoutUC),
	}

	e := server.New(cfg, h)
	if err := server.Start(e, ":"+cfg.Port); err != nil {
		log.Fatal(err)
	}
}

// seedProducts loads the demo catalog once, on an empty table.
// Prices are in cents.
func seedProducts(repo *infraRepo.ProductGormRepository) error {
	ctx := context.Background()

	total, err := repo.Count(ctx)
	if err != nil {
		return err
	}
	if total > 0 {
		return nil
	}

	catalog := []model.Product{
		{ID: "1", Name: `MacBook Pro 14" M3 Pro`, Description: "Notebook profissional com chip M3 Pro, ideal para desenvolvedores e designers.", Price: 1899900, ImageURL: "https://images.unsplash.com/photo-1517336714731-489689fd1ca8?w=500&h=300&fit=crop", IsActive: true},
		{ID: "2", Name: "Dell XPS 13 Plus", Description: "Ultrabook premium com design elegante e performance excepcional.", Price: 1299900, ImageURL: "https://images.unsplash.com/photo-1496181133206-80ce9b88a853?w=500&h=300&fit=crop", IsActive: true},
		{ID: "3", Name: "ASUS ROG Strix G15", Description: "Gaming laptop com RTX 4060 e processador AMD Ryzen 7.", Price: 899900, ImageURL: "https://images.unsplash.com/photo-1603302576837-37561b2e2302?w=500&h=300&fit=crop", IsActive: true},
		{ID: "4", Name: "Lenovo ThinkPad X1 Carbon", Description: "Notebook empresarial ultraportátil com máxima durabilidade.", Price: 1599900, ImageURL: "https://images.unsplash.com/photo-1587831990711-23ca6441447b?w=500&h=300&fit=crop", IsActive: true},
		{ID: "5", Name: "HP Pavilion 15", Description: "Notebook versátil para uso doméstico e profissional.", Price: 399900, ImageURL: "https://images.unsplash.com/photo-1593640408182-31c70c8268f5?w=500&h=300&fit=crop", IsActive: true},
		{ID: "6", Name: "MSI Creator Z16", Description: "Workstation móvel para criadores de conteúdo e profissionais.", Price: 1199900, ImageURL: "https://images.unsplash.com/photo-1541807084-5c52b6b3adef?w=500&h=300&fit=crop", IsActive: true},
	}

	for i := range catalog {
		if err := repo.Create(ctx, &catalog[i]); err != nil {
			return err
		}
	}
	return nil
}
