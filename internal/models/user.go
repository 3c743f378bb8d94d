package models

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// User representa uma conta registrada e tudo o que ela possui.
//
// Os campos mutáveis ficam atrás de mu; quem lê recebe cópias.
// O nome de usuário só deve ser trocado pelo diretório (ver
// repository.InMemoryStore.RenameUser), que mantém a chave do mapa em sincronia.
type User struct {
	ID        uuid.UUID
	CreatedAt time.Time

	mu       sync.Mutex
	username string
	password string
	skills   []Skill
	friends  []string
	trades   []TradeRequest
	messages map[string][]string
}

// UserSnapshot é uma cópia imutável do estado de uma conta (sem a senha)
type UserSnapshot struct {
	ID            uuid.UUID           `json:"id"`
	Username      string              `json:"username"`
	CreatedAt     time.Time           `json:"createdAt"`
	Skills        []Skill             `json:"skills"`
	Friends       []string            `json:"friends"`
	PendingTrades []TradeRequest      `json:"pendingTrades"`
	Messages      map[string][]string `json:"messages"`
}

// NewUser cria uma conta vazia
func NewUser(username, password string) *User {
	return &User{
		ID:        uuid.New(),
		CreatedAt: time.Now(),
		username:  username,
		password:  password,
		skills:    []Skill{},
		friends:   []string{},
		trades:    []TradeRequest{},
		messages:  make(map[string][]string),
	}
}

func (u *User) Username() string {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.username
}

// SetUsername troca o nome da conta. Não mexe no diretório.
func (u *User) SetUsername(username string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.username = username
}

// CheckPassword compara a senha exatamente, sem hash
func (u *User) CheckPassword(password string) bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.password == password
}

func (u *User) SetPassword(password string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.password = password
}

// AddSkill adiciona a habilidade ao final da lista (duplicatas são permitidas)
// e retorna a lista atualizada
func (u *User) AddSkill(skill Skill) []Skill {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.skills = append(u.skills, skill)
	return cloneSlice(u.skills)
}

func (u *User) Skills() []Skill {
	u.mu.Lock()
	defer u.mu.Unlock()
	return cloneSlice(u.skills)
}

// SkillNames retorna os nomes das habilidades que podem ser oferecidas em troca
func (u *User) SkillNames() []string {
	u.mu.Lock()
	defer u.mu.Unlock()
	names := make([]string, 0, len(u.skills))
	for _, s := range u.skills {
		names = append(names, s.Name)
	}
	return names
}

// AddFriend adiciona um amigo e (re)inicia o histórico de mensagens com ele.
// Não verifica se o usuário existe nem se já é amigo.
func (u *User) AddFriend(friend string) []string {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.friends = append(u.friends, friend)
	u.messages[friend] = []string{}
	return cloneSlice(u.friends)
}

func (u *User) Friends() []string {
	u.mu.Lock()
	defer u.mu.Unlock()
	return cloneSlice(u.friends)
}

// ReceiveTrade registra uma proposta de troca feita por outro usuário
func (u *User) ReceiveTrade(skillName, from string) TradeRequest {
	u.mu.Lock()
	defer u.mu.Unlock()
	req := TradeRequest{SkillName: skillName, From: from, CreatedAt: time.Now()}
	u.trades = append(u.trades, req)
	return req
}

func (u *User) PendingTrades() []TradeRequest {
	u.mu.Lock()
	defer u.mu.Unlock()
	return cloneSlice(u.trades)
}

// AcceptTrade consome a primeira proposta pendente com esse nome de habilidade
func (u *User) AcceptTrade(skillName string) (TradeOutcome, error) {
	return u.resolveTrade(skillName, TradeAccepted)
}

// DeclineTrade consome a primeira proposta pendente com esse nome de habilidade
func (u *User) DeclineTrade(skillName string) (TradeOutcome, error) {
	return u.resolveTrade(skillName, TradeDeclined)
}

// A busca é só pelo nome da habilidade: se dois amigos propuseram a mesma,
// a mais antiga vence.
func (u *User) resolveTrade(skillName string, status TradeStatus) (TradeOutcome, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	for i, req := range u.trades {
		if req.SkillName != skillName {
			continue
		}
		u.trades = append(u.trades[:i:i], u.trades[i+1:]...)
		return newTradeOutcome(req, status), nil
	}
	return TradeOutcome{}, ErrTradeNotFound
}

// SendMessage adiciona o texto ao histórico com o amigo. O histórico só
// existe depois de AddFriend; caso contrário retorna ErrFriendNotFound.
func (u *User) SendMessage(friend, text string) ([]string, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	log, ok := u.messages[friend]
	if !ok {
		return nil, ErrFriendNotFound
	}
	log = append(log, text)
	u.messages[friend] = log
	return cloneSlice(log), nil
}

func (u *User) Messages(friend string) ([]string, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	log, ok := u.messages[friend]
	if !ok {
		return nil, ErrFriendNotFound
	}
	return cloneSlice(log), nil
}

func (u *User) Snapshot() UserSnapshot {
	u.mu.Lock()
	defer u.mu.Unlock()

	messages := make(map[string][]string, len(u.messages))
	for friend, log := range u.messages {
		messages[friend] = cloneSlice(log)
	}

	return UserSnapshot{
		ID:            u.ID,
		Username:      u.username,
		CreatedAt:     u.CreatedAt,
		Skills:        cloneSlice(u.skills),
		Friends:       cloneSlice(u.friends),
		PendingTrades: cloneSlice(u.trades),
		Messages:      messages,
	}
}

// Retorna sempre um slice não-nil, para consistência de JSON
func cloneSlice[T any](in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	return out
}
