package impl

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"unicode/utf8"

	"plantcare/internal/domain/entity"
	domainerrors "plantcare/internal/domain/errors"
	"plantcare/internal/domain/service"
	mockRepo "plantcare/internal/mocks/repository"
	mockSvc "plantcare/internal/mocks/service"
	"plantcare/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDirectory = []entity.Candidate{
	{ID: "local-001", CommonNamePt: "Jiboia", ScientificName: "Epipremnum aureum", Family: "Araceae"},
	{ID: "local-002", CommonNamePt: "Ébano-verde", ScientificName: "Philodendron ebano", Family: "Araceae"},
	{ID: "local-003", CommonNamePt: "Costela-de-adão", ScientificName: "Monstera deliciosa", Family: "Araceae"},
	{ID: "local-004", CommonNamePt: "Filodendro", ScientificName: "Philodendron hederaceum", Family: "Araceae"},
	{ID: "local-005", CommonNamePt: "Espada-de-são-jorge", ScientificName: "Dracaena trifasciata", Family: "Asparagaceae"},
	{ID: "local-006", CommonNamePt: "Babosa", ScientificName: "Aloe vera", Family: "Asphodelaceae",
		AlternativeNames: []string{"Aloe"}, Origin: "Península Arábica", GrowthHabit: "Suculenta"},
}

type suggestionServiceFixtures struct {
	service   usecase.SuggestionUsecase
	directory *mockRepo.MockPlantDirectory
	lookup    *mockSvc.MockPlantLookup
}

func createTestSuggestionService(t *testing.T, maxResults int) suggestionServiceFixtures {
	directory := mockRepo.NewMockPlantDirectory(t)
	lookup := mockSvc.NewMockPlantLookup(t)

	return suggestionServiceFixtures{
		service: NewSuggestionService(SuggestionServiceParams{
			Directory: directory,
			Lookup:    lookup,
			Config:    newTestConfig(maxResults),
			Logger:    newDiscardLogger(),
		}),
		directory: directory,
		lookup:    lookup,
	}
}

func externalPlant(id int, common, scientific string) service.ExternalPlant {
	raw, _ := json.Marshal(map[string]any{"id": id, "common_name": common, "scientific_name": scientific})

	return service.ExternalPlant{ID: id, CommonName: common, ScientificName: scientific, Raw: raw}
}

func candidateIDs(candidates []entity.Candidate) []string {
	ids := make([]string, 0, len(candidates))
	for _, c := range candidates {
		ids = append(ids, c.ID)
	}

	return ids
}

func TestSuggestionService_Search_ShortQuery(t *testing.T) {
	fx := createTestSuggestionService(t, 10)
	called := false

	got := fx.service.Search(context.Background(), "a", usecase.SearchOptions{
		UseExternal: true,
		ExternalSearch: func(context.Context, string) ([]service.ExternalPlant, error) {
			called = true

			return nil, nil
		},
	})

	assert.NotNil(t, got)
	assert.Empty(t, got)
	assert.False(t, called)
}

func TestSuggestionService_Search_LengthGateUsesRawQuery(t *testing.T) {
	for _, query := range []string{" j", "j "} {
		t.Run(query, func(t *testing.T) {
			fx := createTestSuggestionService(t, 10)
			fx.directory.EXPECT().All().Return(testDirectory)

			got := fx.service.Search(context.Background(), query, usecase.SearchOptions{})

			assert.ElementsMatch(t, []string{"local-001", "local-005"}, candidateIDs(got))
		})
	}

	t.Run("blank", func(t *testing.T) {
		fx := createTestSuggestionService(t, 10)

		got := fx.service.Search(context.Background(), "   ", usecase.SearchOptions{})

		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestSuggestionService_Search_MatchesNameOrScientificOnce(t *testing.T) {
	fx := createTestSuggestionService(t, 10)
	fx.directory.EXPECT().All().Return(testDirectory)

	// Filodendro matches by both names; Ébano-verde only by scientific name.
	got := fx.service.Search(context.Background(), "DENDRO", usecase.SearchOptions{})

	assert.Equal(t, []string{"local-004", "local-002"}, candidateIDs(got))
}

func TestSuggestionService_Search_RanksNameMatchesThenCollation(t *testing.T) {
	fx := createTestSuggestionService(t, 10)
	fx.directory.EXPECT().All().Return([]entity.Candidate{
		{ID: "local-101", CommonNamePt: "Zebrina", ScientificName: "Tradescantia zebrina"},
		{ID: "local-102", CommonNamePt: "Árvore-da-felicidade", ScientificName: "Polyscias fruticosa"},
		{ID: "local-103", CommonNamePt: "Trapoeraba-roxa", ScientificName: "Tradescantia pallida"},
		{ID: "local-104", CommonNamePt: "Abacaxi-roxo", ScientificName: "Tradescantia spathacea"},
	})

	got := fx.service.Search(context.Background(), "ra", usecase.SearchOptions{})

	assert.Equal(t, []string{"local-103", "local-104", "local-101"}, candidateIDs(got))
}

func TestSuggestionService_Search_CollationIgnoresAccents(t *testing.T) {
	fx := createTestSuggestionService(t, 10)
	fx.directory.EXPECT().All().Return(testDirectory)

	got := fx.service.Search(context.Background(), "philodendron", usecase.SearchOptions{})

	// Ébano sorts with E, before Filodendro.
	assert.Equal(t, []string{"local-002", "local-004"}, candidateIDs(got))
}

func TestSuggestionService_Search_ExternalDisabledNeverCalls(t *testing.T) {
	fx := createTestSuggestionService(t, 10)
	fx.directory.EXPECT().All().Return(testDirectory)
	called := false

	got := fx.service.Search(context.Background(), "rosa", usecase.SearchOptions{
		UseExternal: false,
		ExternalSearch: func(context.Context, string) ([]service.ExternalPlant, error) {
			called = true

			return []service.ExternalPlant{externalPlant(1, "rose", "Rosa")}, nil
		},
	})

	assert.Empty(t, got)
	assert.False(t, called)
}

func TestSuggestionService_Search_ExternalOnlyWhenNoLocalMatch(t *testing.T) {
	fx := createTestSuggestionService(t, 10)
	fx.directory.EXPECT().All().Return(testDirectory)
	called := false

	got := fx.service.Search(context.Background(), "jiboia", usecase.SearchOptions{
		UseExternal: true,
		ExternalSearch: func(context.Context, string) ([]service.ExternalPlant, error) {
			called = true

			return nil, nil
		},
	})

	assert.Equal(t, []string{"local-001"}, candidateIDs(got))
	assert.False(t, called)
}

func TestSuggestionService_Search_ExternalFallback(t *testing.T) {
	fx := createTestSuggestionService(t, 10)
	fx.directory.EXPECT().All().Return(testDirectory)

	got := fx.service.Search(context.Background(), "rosa", usecase.SearchOptions{
		UseExternal: true,
		ExternalSearch: func(_ context.Context, query string) ([]service.ExternalPlant, error) {
			assert.Equal(t, "rosa", query)

			return []service.ExternalPlant{
				externalPlant(42, "", "Rosa canina"),
				externalPlant(7, "Rosa chinesa", "Rosa chinensis"),
			}, nil
		},
	})

	require.Len(t, got, 2)
	assert.Equal(t, []string{"trefle-42", "trefle-7"}, candidateIDs(got))
	assert.True(t, got[0].IsExternal)
	assert.Equal(t, "Rosa canina", got[0].CommonNamePt)
	assert.NotEmpty(t, got[0].External)
}

func TestSuggestionService_Search_ExternalFailureDegrades(t *testing.T) {
	fx := createTestSuggestionService(t, 10)
	fx.directory.EXPECT().All().Return(testDirectory)

	got := fx.service.Search(context.Background(), "rosa", usecase.SearchOptions{
		UseExternal: true,
		ExternalSearch: func(context.Context, string) ([]service.ExternalPlant, error) {
			return nil, errors.New("connection refused")
		},
	})

	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSuggestionService_RankLocalBeforeExternal(t *testing.T) {
	candidates := []entity.Candidate{
		candidateFromExternal(&service.ExternalPlant{ID: 1, CommonName: "Aaa fern"}),
		{ID: "local-009", CommonNamePt: "Zz fern"},
	}

	rankCandidates(candidates, "fern")

	assert.Equal(t, []string{"local-009", "trefle-1"}, candidateIDs(candidates))
}

func TestSuggestionService_Search_Truncates(t *testing.T) {
	t.Run("configured default", func(t *testing.T) {
		fx := createTestSuggestionService(t, 2)
		fx.directory.EXPECT().All().Return(testDirectory)

		got := fx.service.Search(context.Background(), "ra", usecase.SearchOptions{})

		assert.Len(t, got, 2)
	})

	t.Run("per call", func(t *testing.T) {
		fx := createTestSuggestionService(t, 10)
		fx.directory.EXPECT().All().Return(testDirectory)

		got := fx.service.Search(context.Background(), "ra", usecase.SearchOptions{MaxResults: 1})

		assert.Len(t, got, 1)
	})
}

func TestSuggestionService_Directory(t *testing.T) {
	fx := createTestSuggestionService(t, 10)
	fx.directory.EXPECT().All().Return(testDirectory)

	got := fx.service.Directory(context.Background())

	assert.Equal(t,
		[]string{"local-006", "local-003", "local-002", "local-005", "local-004", "local-001"},
		candidateIDs(got),
	)
	assert.Equal(t, "local-001", testDirectory[0].ID)
}

func TestSuggestionService_Lookup(t *testing.T) {
	fx := createTestSuggestionService(t, 10)
	fx.directory.EXPECT().FindByID("local-006").Return(testDirectory[5], true)
	fx.directory.EXPECT().FindByID("trefle-1").Return(entity.Candidate{}, false)

	got, err := fx.service.Lookup(context.Background(), "local-006")
	require.NoError(t, err)
	assert.Equal(t, "Babosa", got.CommonNamePt)

	_, err = fx.service.Lookup(context.Background(), "trefle-1")
	assert.True(t, errors.Is(err, domainerrors.ErrCandidateNotFound))
}

func TestSuggestionService_Draft(t *testing.T) {
	fx := createTestSuggestionService(t, 10)

	t.Run("local", func(t *testing.T) {
		draft := fx.service.Draft(&testDirectory[5])

		assert.Equal(t, "Babosa", draft.Name)
		assert.Equal(t, "Aloe vera", draft.Species)
		assert.Contains(t, draft.Notes, "Family: Asphodelaceae")
		assert.Contains(t, draft.Notes, "Origin: Península Arábica")
		assert.Contains(t, draft.Notes, "Other names: Aloe")
		assert.NotContains(t, draft.Notes, "Trefle data")
	})

	t.Run("external", func(t *testing.T) {
		raw := json.RawMessage(`{"id":5,"duration":["Perennial"],"foliage":{"evergreen":true},"links":{"plant":"/api/v1/plants/rosa"}}`)
		candidate := candidateFromExternal(&service.ExternalPlant{ID: 5, ScientificName: "Rosa canina", Raw: raw})

		draft := fx.service.Draft(&candidate)

		assert.Equal(t, "Rosa canina", draft.Name)
		assert.Contains(t, draft.Notes, "Origin: N/A")
		assert.Contains(t, draft.Notes, "Duration: Perennial")
		assert.Contains(t, draft.Notes, "Evergreen foliage: Yes")
		assert.Contains(t, draft.Notes, "Etymology: N/A")
		assert.Contains(t, draft.Notes, "Trefle link: /api/v1/plants/rosa")
	})

	t.Run("truncated", func(t *testing.T) {
		candidate := entity.Candidate{CommonNamePt: "Longa", AlternativeNames: []string{strings.Repeat("ç", 600)}}

		draft := fx.service.Draft(&candidate)

		assert.Equal(t, entity.MaxNotesLength, utf8.RuneCountInString(draft.Notes))
	})
}

func TestSuggestionService_SearchExternal(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		fx := createTestSuggestionService(t, 10)
		plants := []service.ExternalPlant{externalPlant(1, "rose", "Rosa")}
		fx.lookup.EXPECT().Search(ctx, "rose").Return(plants, nil)

		got, err := fx.service.SearchExternal(ctx, "rose")

		require.NoError(t, err)
		assert.Equal(t, plants, got)
	})

	t.Run("empty result is not nil", func(t *testing.T) {
		fx := createTestSuggestionService(t, 10)
		fx.lookup.EXPECT().Search(ctx, "zzz").Return(nil, nil)

		got, err := fx.service.SearchExternal(ctx, "zzz")

		require.NoError(t, err)
		assert.NotNil(t, got)
	})

	t.Run("upstream failure", func(t *testing.T) {
		fx := createTestSuggestionService(t, 10)
		fx.lookup.EXPECT().Search(ctx, "rose").Return(nil, errors.New("trefle returned status 502"))

		_, err := fx.service.SearchExternal(ctx, "rose")

		assert.True(t, errors.Is(err, domainerrors.ErrUpstreamFailure))
	})
}
