package foodsource

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"nutriscan/internal/model"
	repoMocks "nutriscan/internal/repository/mocks"
)

func TestCatalog_Find(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		label     string
		setup     func(m *repoMocks.MockFoodRepository)
		wantName  string
		wantErr   bool
		wantNoHit bool
	}{
		{
			name:  "hit uses normalized key",
			label: "  Mango ",
			setup: func(m *repoMocks.MockFoodRepository) {
				m.On("FindByName", ctx, "mango").Return(&model.NutritionRecord{Name: "Mango"}, nil)
			},
			wantName: "Mango",
		},
		{
			name:  "no rows is a miss",
			label: "durian",
			setup: func(m *repoMocks.MockFoodRepository) {
				m.On("FindByName", ctx, "durian").Return(nil, sql.ErrNoRows)
			},
			wantNoHit: true,
		},
		{
			name:  "db error surfaces",
			label: "kiwi",
			setup: func(m *repoMocks.MockFoodRepository) {
				m.On("FindByName", ctx, mock.Anything).Return(nil, errors.New("conn refused"))
			},
			wantErr: true,
		},
		{
			name:      "blank label skips the query",
			label:     "   ",
			setup:     func(m *repoMocks.MockFoodRepository) {},
			wantNoHit: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(repoMocks.MockFoodRepository)
			tt.setup(repo)

			rec, err := NewCatalog(repo).Find(ctx, tt.label)
			switch {
			case tt.wantErr:
				assert.Error(t, err)
				assert.Nil(t, rec)
			case tt.wantNoHit:
				assert.NoError(t, err)
				assert.Nil(t, rec)
			default:
				assert.NoError(t, err)
				assert.Equal(t, tt.wantName, rec.Name)
				assert.Equal(t, "catalog", rec.Source)
			}
			repo.AssertExpectations(t)
		})
	}
}
