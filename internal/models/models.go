package models

import (
	"fmt"
	"time"
)

// SkillLevel é o nível de proficiência declarado para uma habilidade
type SkillLevel string

const (
	LevelBeginner     SkillLevel = "Beginner"
	LevelIntermediate SkillLevel = "Intermediate"
	LevelExpert       SkillLevel = "Expert"
)

// SkillLevels lista os níveis aceitos, na ordem exibida ao usuário
var SkillLevels = []SkillLevel{LevelBeginner, LevelIntermediate, LevelExpert}

// ParseSkillLevel converte uma string em SkillLevel (sensível a maiúsculas)
func ParseSkillLevel(s string) (SkillLevel, error) {
	for _, lvl := range SkillLevels {
		if string(lvl) == s {
			return lvl, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidSkillLevel, s)
}

// Skill representa uma habilidade cadastrada por um usuário.
// Não é alterada depois de criada.
type Skill struct {
	Name        string     `json:"name"`
	Level       SkillLevel `json:"level"`
	Description string     `json:"description"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// NewSkill cria uma habilidade com a data de criação preenchida
func NewSkill(name string, level SkillLevel, description string) Skill {
	return Skill{
		Name:        name,
		Level:       level,
		Description: description,
		CreatedAt:   time.Now(),
	}
}

func (s Skill) String() string {
	return fmt.Sprintf("%s (Level: %s)", s.Name, s.Level)
}

// TradeRequest é uma proposta de troca pendente, guardada na conta de quem recebe
type TradeRequest struct {
	SkillName string    `json:"skill"`
	From      string    `json:"from"`
	CreatedAt time.Time `json:"createdAt"`
}

func (t TradeRequest) String() string {
	return fmt.Sprintf("Trade: %s from %s", t.SkillName, t.From)
}

// TradeStatus é o estado final de uma proposta
type TradeStatus string

const (
	TradeAccepted TradeStatus = "accepted"
	TradeDeclined TradeStatus = "declined"
)

// TradeOutcome descreve a proposta consumida por um accept/decline
type TradeOutcome struct {
	Request TradeRequest `json:"request"`
	Status  TradeStatus  `json:"status"`
	Message string       `json:"message"`
}

func newTradeOutcome(req TradeRequest, status TradeStatus) TradeOutcome {
	var msg string
	switch status {
	case TradeAccepted:
		msg = "Trade accepted: " + req.SkillName
	case TradeDeclined:
		msg = "Trade declined: " + req.SkillName
	}
	return TradeOutcome{Request: req, Status: status, Message: msg}
}
