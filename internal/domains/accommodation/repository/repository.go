package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"github.com/git-nard/wanderer-albay-guide-remake/infras/otel"
	"github.com/git-nard/wanderer-albay-guide-remake/infras/postgres"
	"github.com/git-nard/wanderer-albay-guide-remake/internal/domains/accommodation/model"
	gDto "github.com/git-nard/wanderer-albay-guide-remake/shared/dto"
	gRepo "github.com/git-nard/wanderer-albay-guide-remake/shared/repository"
)

type Accommodation interface {
	Insert(ctx context.Context, model model.Accommodation) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Accommodation, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Accommodation, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Accommodation]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Accommodation {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Accommodation](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
