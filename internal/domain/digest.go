package domain

// ChangeDirection indica o sentido da variação de posição
type ChangeDirection string

const (
	ChangeNone ChangeDirection = ""     // Sem rótulo (app fora do ranking hoje)
	ChangeNew  ChangeDirection = "new"  // Sem posição no período de comparação
	ChangeFlat ChangeDirection = "flat" // Mesma posição
	ChangeUp   ChangeDirection = "up"
	ChangeDown ChangeDirection = "down"
)

type Change struct {
	Direction ChangeDirection `json:"direction"`
	Magnitude int             `json:"magnitude"`
	Label     string          `json:"label"`
}

// HasLabel indica se a variação deve ser exibida
func (c Change) HasLabel() bool {
	return c.Direction != ChangeNone
}

// AppDigestLine é a linha de um app dentro do digest de um destinatário
type AppDigestLine struct {
	AppID        string `json:"app_id"`
	AppName      string `json:"app_name"`
	RankText     string `json:"rank_text"` // "#5" ou "Below #200"
	DailyChange  Change `json:"daily_change"`
	WeeklyChange Change `json:"weekly_change"`
}

type RecipientDigest struct {
	Email    string          `json:"email"`
	Subject  string          `json:"subject"`
	Lines    []AppDigestLine `json:"lines"`
	HTMLBody string          `json:"-"`
	// RenderErr marca um digest que não pôde ser renderizado; ele é contado como falha de envio
	RenderErr error `json:"-"`
}

// EmailMessage é o contrato com o transporte de e-mail
type EmailMessage struct {
	To       string
	Subject  string
	HTMLBody string
}
