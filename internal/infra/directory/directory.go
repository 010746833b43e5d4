// Package directory holds the built-in catalogue of common Brazilian houseplants.
package directory

import (
	"plantcare/internal/domain/entity"
	"plantcare/internal/domain/repository"
)

type staticDirectory struct {
	entries []entity.Candidate
	byID    map[string]int
}

// New returns the built-in plant directory.
func New() repository.PlantDirectory {
	return newStaticDirectory(catalogue)
}

func newStaticDirectory(entries []entity.Candidate) *staticDirectory {
	byID := make(map[string]int, len(entries))
	for i, entry := range entries {
		byID[entry.ID] = i
	}

	return &staticDirectory{entries: entries, byID: byID}
}

func (d *staticDirectory) All() []entity.Candidate {
	return d.entries
}

func (d *staticDirectory) FindByID(id string) (entity.Candidate, bool) {
	i, ok := d.byID[id]
	if !ok {
		return entity.Candidate{}, false
	}

	return d.entries[i], true
}

const (
	habitClimbing  = "Trepadeira"
	habitHerb      = "Herbácea"
	habitShrub     = "Arbusto"
	habitTree      = "Árvore"
	habitSucculent = "Suculenta"
	habitEpiphyte  = "Epífita"
	habitPalm      = "Palmeira"
)

//nolint:gochecknoglobals
var catalogue = []entity.Candidate{
	{ID: "local-001", CommonNamePt: "Jiboia", ScientificName: "Epipremnum aureum", Family: "Araceae",
		AlternativeNames: []string{"Pothos", "Hera-do-diabo"}, Origin: "Ilhas Salomão", GrowthHabit: habitClimbing},
	{ID: "local-002", CommonNamePt: "Espada-de-são-jorge", ScientificName: "Dracaena trifasciata", Family: "Asparagaceae",
		AlternativeNames: []string{"Sansevieria", "Língua-de-sogra"}, Origin: "África Ocidental", GrowthHabit: habitSucculent},
	{ID: "local-003", CommonNamePt: "Costela-de-adão", ScientificName: "Monstera deliciosa", Family: "Araceae",
		AlternativeNames: []string{"Monstera", "Banana-de-macaco"}, Origin: "México e América Central", GrowthHabit: habitClimbing},
	{ID: "local-004", CommonNamePt: "Zamioculca", ScientificName: "Zamioculcas zamiifolia", Family: "Araceae",
		AlternativeNames: []string{"ZZ", "Planta-da-fortuna"}, Origin: "África Oriental", GrowthHabit: habitHerb},
	{ID: "local-005", CommonNamePt: "Lírio-da-paz", ScientificName: "Spathiphyllum wallisii", Family: "Araceae",
		AlternativeNames: []string{"Espatifilo"}, Origin: "Colômbia e Venezuela", GrowthHabit: habitHerb},
	{ID: "local-006", CommonNamePt: "Samambaia", ScientificName: "Nephrolepis exaltata", Family: "Nephrolepidaceae",
		AlternativeNames: []string{"Samambaia-americana", "Feto"}, Origin: "Américas tropicais", GrowthHabit: habitHerb},
	{ID: "local-007", CommonNamePt: "Babosa", ScientificName: "Aloe vera", Family: "Asphodelaceae",
		AlternativeNames: []string{"Aloe", "Erva-babosa"}, Origin: "Península Arábica", GrowthHabit: habitSucculent},
	{ID: "local-008", CommonNamePt: "Clorofito", ScientificName: "Chlorophytum comosum", Family: "Asparagaceae",
		AlternativeNames: []string{"Gravatinha", "Planta-aranha"}, Origin: "África do Sul", GrowthHabit: habitHerb},
	{ID: "local-009", CommonNamePt: "Comigo-ninguém-pode", ScientificName: "Dieffenbachia seguine", Family: "Araceae",
		AlternativeNames: []string{"Aningal"}, Origin: "América tropical", GrowthHabit: habitHerb},
	{ID: "local-010", CommonNamePt: "Antúrio", ScientificName: "Anthurium andraeanum", Family: "Araceae",
		AlternativeNames: []string{"Flor-de-flamingo"}, Origin: "Colômbia e Equador", GrowthHabit: habitEpiphyte},
	{ID: "local-011", CommonNamePt: "Orquídea-borboleta", ScientificName: "Phalaenopsis amabilis", Family: "Orchidaceae",
		AlternativeNames: []string{"Falenópsis"}, Origin: "Sudeste Asiático", GrowthHabit: habitEpiphyte},
	{ID: "local-012", CommonNamePt: "Violeta-africana", ScientificName: "Streptocarpus ionanthus", Family: "Gesneriaceae",
		AlternativeNames: []string{"Saintpaulia", "Violeta"}, Origin: "Tanzânia e Quênia", GrowthHabit: habitHerb},
	{ID: "local-013", CommonNamePt: "Ficus-lira", ScientificName: "Ficus lyrata", Family: "Moraceae",
		AlternativeNames: []string{"Figueira-lira"}, Origin: "África Ocidental", GrowthHabit: habitTree},
	{ID: "local-014", CommonNamePt: "Falsa-seringueira", ScientificName: "Ficus elastica", Family: "Moraceae",
		AlternativeNames: []string{"Ficus-borracha", "Árvore-da-borracha"}, Origin: "Sul e Sudeste Asiático", GrowthHabit: habitTree},
	{ID: "local-015", CommonNamePt: "Palmeira-ráfia", ScientificName: "Rhapis excelsa", Family: "Arecaceae",
		AlternativeNames: []string{"Ráfis", "Palmeira-dama"}, Origin: "China meridional", GrowthHabit: habitPalm},
	{ID: "local-016", CommonNamePt: "Areca-bambu", ScientificName: "Dypsis lutescens", Family: "Arecaceae",
		AlternativeNames: []string{"Palmeira-areca"}, Origin: "Madagascar", GrowthHabit: habitPalm},
	{ID: "local-017", CommonNamePt: "Maranta", ScientificName: "Maranta leuconeura", Family: "Marantaceae",
		AlternativeNames: []string{"Planta-rezadeira"}, Origin: "Brasil", GrowthHabit: habitHerb},
	{ID: "local-018", CommonNamePt: "Calateia", ScientificName: "Goeppertia makoyana", Family: "Marantaceae",
		AlternativeNames: []string{"Calathea", "Pena-de-pavão"}, Origin: "Brasil", GrowthHabit: habitHerb},
	{ID: "local-019", CommonNamePt: "Peperômia", ScientificName: "Peperomia obtusifolia", Family: "Piperaceae",
		AlternativeNames: []string{"Planta-de-borracha-bebê"}, Origin: "América tropical", GrowthHabit: habitHerb},
	{ID: "local-020", CommonNamePt: "Filodendro", ScientificName: "Philodendron hederaceum", Family: "Araceae",
		AlternativeNames: []string{"Filodendro-cordato"}, Origin: "América Central e Caribe", GrowthHabit: habitClimbing},
	{ID: "local-021", CommonNamePt: "Hera", ScientificName: "Hedera helix", Family: "Araliaceae",
		AlternativeNames: []string{"Hera-inglesa"}, Origin: "Europa", GrowthHabit: habitClimbing},
	{ID: "local-022", CommonNamePt: "Begônia", ScientificName: "Begonia rex", Family: "Begoniaceae",
		AlternativeNames: []string{"Begônia-rex"}, Origin: "Índia", GrowthHabit: habitHerb},
	{ID: "local-023", CommonNamePt: "Cacto-de-natal", ScientificName: "Schlumbergera truncata", Family: "Cactaceae",
		AlternativeNames: []string{"Flor-de-maio"}, Origin: "Brasil", GrowthHabit: habitEpiphyte},
	{ID: "local-024", CommonNamePt: "Manjericão", ScientificName: "Ocimum basilicum", Family: "Lamiaceae",
		AlternativeNames: []string{"Alfavaca"}, Origin: "Índia", GrowthHabit: habitHerb},
	{ID: "local-025", CommonNamePt: "Alecrim", ScientificName: "Salvia rosmarinus", Family: "Lamiaceae",
		AlternativeNames: []string{"Rosmarinho"}, Origin: "Mediterrâneo", GrowthHabit: habitShrub},
	{ID: "local-026", CommonNamePt: "Hortelã", ScientificName: "Mentha spicata", Family: "Lamiaceae",
		AlternativeNames: []string{"Hortelã-comum"}, Origin: "Europa e Ásia", GrowthHabit: habitHerb},
	{ID: "local-027", CommonNamePt: "Echeveria", ScientificName: "Echeveria elegans", Family: "Crassulaceae",
		AlternativeNames: []string{"Rosa-de-pedra"}, Origin: "México", GrowthHabit: habitSucculent},
	{ID: "local-028", CommonNamePt: "Planta-jade", ScientificName: "Crassula ovata", Family: "Crassulaceae",
		AlternativeNames: []string{"Árvore-da-amizade"}, Origin: "África do Sul", GrowthHabit: habitSucculent},
	{ID: "local-029", CommonNamePt: "Dracena-de-madagascar", ScientificName: "Dracaena marginata", Family: "Asparagaceae",
		AlternativeNames: []string{"Dracena-tricolor"}, Origin: "Madagascar", GrowthHabit: habitShrub},
	{ID: "local-030", CommonNamePt: "Singônio", ScientificName: "Syngonium podophyllum", Family: "Araceae",
		AlternativeNames: []string{"Planta-seta"}, Origin: "América Central", GrowthHabit: habitClimbing},
	{ID: "local-031", CommonNamePt: "Guaimbê", ScientificName: "Thaumatophyllum bipinnatifidum", Family: "Araceae",
		AlternativeNames: []string{"Banana-de-imbé"}, Origin: "Brasil", GrowthHabit: habitShrub},
}
