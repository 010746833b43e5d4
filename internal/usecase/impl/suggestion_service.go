package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"plantcare/config"
	deliverycontext "plantcare/internal/delivery/context"
	"plantcare/internal/domain/entity"
	domainerrors "plantcare/internal/domain/errors"
	"plantcare/internal/domain/repository"
	"plantcare/internal/domain/service"
	"plantcare/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

const (
	minQueryLength    = 2
	defaultMaxResults = 10
	notAvailable      = "N/A"
)

// suggestionService implements the SuggestionUsecase interface.
type suggestionService struct {
	directory  repository.PlantDirectory
	lookup     service.PlantLookup
	maxResults int
	logger     *slog.Logger
}

// SuggestionServiceParams holds dependencies for SuggestionService, injected by Fx.
type SuggestionServiceParams struct {
	fx.In

	Directory repository.PlantDirectory
	Lookup    service.PlantLookup
	Config    *config.Config
	Logger    *slog.Logger
}

// NewSuggestionService is the constructor for suggestionService.
func NewSuggestionService(params SuggestionServiceParams) usecase.SuggestionUsecase {
	maxResults := defaultMaxResults
	if params.Config != nil && params.Config.Suggestion.MaxResults > 0 {
		maxResults = params.Config.Suggestion.MaxResults
	}

	return &suggestionService{
		directory:  params.Directory,
		lookup:     params.Lookup,
		maxResults: maxResults,
		logger:     params.Logger,
	}
}

func (srv *suggestionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Search matches query against the local directory and falls back to the
// external provider only when nothing local matched.
func (srv *suggestionService) Search(ctx context.Context, query string, opts usecase.SearchOptions) []entity.Candidate {
	if utf8.RuneCountInString(query) < minQueryLength {
		return []entity.Candidate{}
	}
	query = strings.TrimSpace(query)
	if query == "" {
		return []entity.Candidate{}
	}

	needle := strings.ToLower(query)
	results := srv.matchLocal(needle)

	if len(results) == 0 && opts.UseExternal && opts.ExternalSearch != nil {
		plants, err := opts.ExternalSearch(ctx, query)
		if err != nil {
			srv.log(ctx).Warn("External plant search failed, using local results",
				slog.String("query", query),
				slog.Any("error", err),
			)
		}
		for i := range plants {
			results = append(results, candidateFromExternal(&plants[i]))
		}
	}

	rankCandidates(results, needle)

	limit := opts.MaxResults
	if limit <= 0 {
		limit = srv.maxResults
	}
	if len(results) > limit {
		results = results[:limit]
	}

	return results
}

// Directory returns every local entry in pt-BR order of the common name.
func (srv *suggestionService) Directory(_ context.Context) []entity.Candidate {
	all := srv.directory.All()
	entries := make([]entity.Candidate, len(all))
	copy(entries, all)

	col := newCollator()
	sort.SliceStable(entries, func(i, j int) bool {
		return col.CompareString(entries[i].CommonNamePt, entries[j].CommonNamePt) < 0
	})

	return entries
}

// Lookup selects a local directory entry.
func (srv *suggestionService) Lookup(_ context.Context, id string) (*entity.Candidate, error) {
	candidate, ok := srv.directory.FindByID(id)
	if !ok {
		return nil, errors.WithStack(domainerrors.ErrCandidateNotFound)
	}

	return &candidate, nil
}

// Draft pre-fills a new plant from the candidate.
func (srv *suggestionService) Draft(candidate *entity.Candidate) usecase.PlantDraft {
	return usecase.PlantDraft{
		Name:    candidate.CommonNamePt,
		Species: candidate.ScientificName,
		Notes:   draftNotes(candidate),
	}
}

// SearchExternal proxies the external provider. Any provider failure is an UpstreamFailure.
func (srv *suggestionService) SearchExternal(ctx context.Context, query string) ([]service.ExternalPlant, error) {
	plants, err := srv.lookup.Search(ctx, query)
	if err != nil {
		srv.log(ctx).Error("External plant search failed",
			slog.String("query", query),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrUpstreamFailure.WrapMessage(err.Error())
	}
	if plants == nil {
		plants = []service.ExternalPlant{}
	}

	return plants, nil
}

func (srv *suggestionService) matchLocal(needle string) []entity.Candidate {
	results := make([]entity.Candidate, 0)
	seen := make(map[string]struct{})

	for _, candidate := range srv.directory.All() {
		if _, dup := seen[candidate.ID]; dup {
			continue
		}
		if !containsFold(candidate.CommonNamePt, needle) && !containsFold(candidate.ScientificName, needle) {
			continue
		}
		seen[candidate.ID] = struct{}{}
		results = append(results, candidate)
	}

	return results
}

// rankCandidates orders local before external, then common-name matches
// first, then pt-BR collation of the common name.
func rankCandidates(candidates []entity.Candidate, needle string) {
	col := newCollator()

	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.IsExternal != b.IsExternal {
			return !a.IsExternal
		}

		aName, bName := containsFold(a.CommonNamePt, needle), containsFold(b.CommonNamePt, needle)
		if aName != bName {
			return aName
		}

		return col.CompareString(a.CommonNamePt, b.CommonNamePt) < 0
	})
}

// candidateFromExternal is the only place provider records become candidates.
func candidateFromExternal(plant *service.ExternalPlant) entity.Candidate {
	name := strings.TrimSpace(plant.CommonName)
	if name == "" {
		name = plant.ScientificName
	}

	return entity.Candidate{
		ID:             entity.ExternalIDPrefix + strconv.Itoa(plant.ID),
		CommonNamePt:   name,
		ScientificName: plant.ScientificName,
		Family:         plant.Family,
		ImageURL:       plant.ImageURL,
		IsExternal:     true,
		External:       plant.Raw,
	}
}

// newCollator is called per use; a Collator is not safe for concurrent use.
func newCollator() *collate.Collator {
	return collate.New(language.BrazilianPortuguese, collate.IgnoreCase)
}

func containsFold(s, lowerNeedle string) bool {
	return strings.Contains(strings.ToLower(s), lowerNeedle)
}

// externalDetails is the subset of a provider record shown in draft notes.
type externalDetails struct {
	Etymology json.RawMessage `json:"etymology"`
	Duration  json.RawMessage `json:"duration"`
	Foliage   struct {
		Evergreen *bool `json:"evergreen"`
	} `json:"foliage"`
	Growth struct {
		LightTolerated json.RawMessage `json:"light_tolerated"`
	} `json:"growth"`
	Links struct {
		Plant string `json:"plant"`
	} `json:"links"`
}

func draftNotes(candidate *entity.Candidate) string {
	var b strings.Builder

	b.WriteString("Plant information:")
	b.WriteString("\nScientific name: " + orNA(candidate.ScientificName))
	b.WriteString("\nFamily: " + orNA(candidate.Family))
	b.WriteString("\nOrigin: " + orNA(candidate.Origin))
	b.WriteString("\nHabit: " + orNA(candidate.GrowthHabit))
	if len(candidate.AlternativeNames) > 0 {
		b.WriteString("\nOther names: " + strings.Join(candidate.AlternativeNames, ", "))
	}

	if candidate.IsExternal && len(candidate.External) > 0 {
		var details externalDetails
		if err := json.Unmarshal(candidate.External, &details); err == nil {
			evergreen := "No"
			if details.Foliage.Evergreen != nil && *details.Foliage.Evergreen {
				evergreen = "Yes"
			}

			b.WriteString("\n\nTrefle data:")
			b.WriteString("\nEtymology: " + rawText(details.Etymology))
			b.WriteString("\nDuration: " + rawText(details.Duration))
			b.WriteString("\nEvergreen foliage: " + evergreen)
			b.WriteString("\nLight tolerated: " + rawText(details.Growth.LightTolerated))
			b.WriteString("\nTrefle link: " + orNA(details.Links.Plant))
		}
	}

	return truncateRunes(b.String(), entity.MaxNotesLength)
}

// rawText renders a provider value whose type varies between records.
func rawText(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return notAvailable
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return orNA(s)
	}

	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return orNA(strings.Join(list, ", "))
	}

	return string(raw)
}

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return notAvailable
	}

	return s
}

func truncateRunes(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}

	return string([]rune(s)[:limit])
}
