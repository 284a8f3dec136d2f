package catalog

import (
	"fmt"
	"strings"
	"time"
)

// Service is a catalog entry as the admin editor writes it. Duration and
// price stay free-text on purpose: the site renders them verbatim and the
// checkout parses the price string when it needs a number.
type Service struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Duration    string   `json:"duration"`
	Price       string   `json:"price"`
	IconName    string   `json:"icon_name"`
	Features    []string `json:"features"`
}

// Settings holds the admin-edited site contact block.
type Settings struct {
	SiteName     string `json:"site_name"`
	Address      string `json:"address"`
	WhatsApp     string `json:"whatsapp"`
	Instagram    string `json:"instagram"`
	Email        string `json:"email"`
	WorkingHours string `json:"working_hours"`
}

// NewServiceID builds ids the way the admin editor always has: a slug of
// the name plus a millisecond timestamp. Not globally unique in theory,
// negligible collision odds in practice.
func NewServiceID(name string, now time.Time) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = strings.Join(strings.Fields(slug), "-")
	return fmt.Sprintf("%s-%d", slug, now.UnixMilli())
}

func DefaultSettings() Settings {
	return Settings{
		SiteName:     "Lemon's Car",
		Address:      "Rua Luiz Manoel de Queiroz, 1004",
		WhatsApp:     "(19) 98906-7707",
		Instagram:    "@lemons_car",
		Email:        "contato@lemonscar.com.br",
		WorkingHours: "Seg-Sex: 8h-18h | Sáb: 8h-14h",
	}
}

// DefaultServices is the hardcoded catalog shown whenever the admin has not
// published one of their own.
func DefaultServices() []Service {
	return []Service{
		{
			ID:          "lavagem-completa",
			Name:        "Lavagem Completa",
			Description: "Limpeza profunda externa e interna do seu veículo",
			Duration:    "2-3 horas",
			Price:       "R$ 150,00",
			IconName:    "droplets",
			Features: []string{
				"Lavagem externa completa",
				"Limpeza interna detalhada",
				"Aspiração profunda",
				"Limpeza de vidros",
				"Hidratação de plásticos",
				"Perfumização",
			},
		},
		{
			ID:          "polimento",
			Name:        "Polimento",
			Description: "Restauração do brilho e proteção da pintura",
			Duration:    "4-6 horas",
			Price:       "R$ 350,00",
			IconName:    "sparkles",
			Features: []string{
				"Polimento técnico",
				"Remoção de riscos leves",
				"Cristalização da pintura",
				"Aplicação de cera protetora",
				"Brilho duradouro",
				"Proteção UV",
			},
		},
		{
			ID:          "manutencao-expressa",
			Name:        "Manutenção Expressa",
			Description: "Limpeza rápida para manter seu carro impecável",
			Duration:    "45-60 minutos",
			Price:       "R$ 80,00",
			IconName:    "wrench",
			Features: []string{
				"Lavagem externa rápida",
				"Limpeza interna básica",
				"Aspiração",
				"Limpeza de vidros",
				"Aromatização",
			},
		},
	}
}
