package api

import (
	"context"

	"github.com/shopsync/pricerunner-feed/app/database"
	"github.com/shopsync/pricerunner-feed/app/feed"
	"github.com/shopsync/pricerunner-feed/app/registration"
)

type BuilderInterface interface {
	Run() ([]feed.Product, error)
}

var _ BuilderInterface = (*feed.Builder)(nil)

type GeneratorInterface interface {
	Run(products []feed.Product) (string, error)
}

var _ GeneratorInterface = (*feed.Generator)(nil)

type RegistrationInterface interface {
	Register(ctx context.Context, reg registration.Registration) error
}

var _ RegistrationInterface = (*registration.Client)(nil)

type Handler struct {
	feedRepo      database.FeedRepository
	categoryRepo  database.CategoryRepository
	productRepo   database.ProductRepository
	builder       BuilderInterface
	validator     feed.Validator
	generator     GeneratorInterface
	errorRenderer *feed.ErrorRenderer
	registration  RegistrationInterface
}
