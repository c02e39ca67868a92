package flow

import (
	"context"
	"fmt"
	"time"

	"github.com/AlekSi/pointer"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/husan7006/davon-taxi-bot/internal/catalog"
)

// Store is the durable side of the conversation: completed orders and
// lightweight user profiles. Failures at finalize are logged and
// swallowed, never surfaced to the user as a crash.
type Store interface {
	SaveOrder(ctx context.Context, order *Order) error
	UpsertProfile(ctx context.Context, user User) error
	RememberPhone(ctx context.Context, userID int64, phone string) error
	LastOrder(ctx context.Context, userID int64) (*Order, error)
}

// Notifier forwards a completed order to the operator channel.
// A notifier with no configured destination is a no-op.
type Notifier interface {
	NotifyOperator(ctx context.Context, order *Order) error
}

// Machine drives one input event at a time through the order-capture
// conversation. It owns all step transitions and validation; it knows
// nothing about the transport that produced the input.
type Machine struct {
	store         Store
	notifier      Notifier
	operatorPhone string
	log           *zap.Logger
	now           func() time.Time
}

func NewMachine(store Store, notifier Notifier, operatorPhone string, log *zap.Logger) *Machine {
	return &Machine{
		store:         store,
		notifier:      notifier,
		operatorPhone: operatorPhone,
		log:           log,
		now:           time.Now,
	}
}

// Handle applies one input to the session and returns the prompts to
// send back. The session is mutated in place; callers must serialize
// calls for the same user.
func (m *Machine) Handle(ctx context.Context, user User, s *Session, in Input) []Message {
	switch in.Intent {
	case IntentStart:
		return m.startSession(ctx, user, s)
	case IntentCancel:
		s.Reset()
		return []Message{{Text: msgCanceled, RemoveKeyboard: true}}
	}

	switch s.Step {
	case StepIdle:
		return []Message{{Text: msgIdleHint, RemoveKeyboard: true}}
	case StepPhone:
		return m.handlePhone(ctx, user, s, in)
	case StepOriginCity:
		return m.handleOriginCity(s, in)
	case StepOriginDistrict:
		return m.handleOriginDistrict(s, in)
	case StepDestinationCity:
		return m.handleDestinationCity(s, in)
	case StepDestinationDistrict:
		return m.handleDestinationDistrict(s, in)
	case StepPassengers:
		return m.handlePassengers(ctx, user, s, in)
	case StepNote:
		return m.handleNote(ctx, user, s, in)
	}

	m.log.Warn("session in unknown step, resetting",
		zap.Int64("user_id", user.ID), zap.Stringer("step", s.Step))
	s.Reset()
	return []Message{{Text: msgIdleHint, RemoveKeyboard: true}}
}

func (m *Machine) startSession(ctx context.Context, user User, s *Session) []Message {
	s.Reset()
	s.Step = StepPhone

	if err := m.store.UpsertProfile(ctx, user); err != nil {
		m.log.Error("profile upsert failed", zap.Int64("user_id", user.ID), zap.Error(err))
	}

	last, err := m.store.LastOrder(ctx, user.ID)
	if err != nil {
		m.log.Error("last order lookup failed", zap.Int64("user_id", user.ID), zap.Error(err))
	}
	if last != nil {
		s.LastPhone = last.Phone
		s.LastDistricts = map[string]string{
			last.OriginCity:      last.OriginDistrict,
			last.DestinationCity: last.DestinationDistrict,
		}
	}

	return []Message{m.phonePrompt(s)}
}

func (m *Machine) handlePhone(ctx context.Context, user User, s *Session, in Input) []Message {
	// Back from the very first step aborts the session entirely.
	if in.Intent == IntentBack {
		s.Reset()
		return []Message{{Text: msgCanceled, RemoveKeyboard: true}}
	}

	raw := in.Text
	if in.Intent == IntentContact {
		raw = in.Phone
	}

	phone := NormalizePhone(raw)
	if !IsValidPhone(phone) {
		return []Message{withText(m.phonePrompt(s), errPhone)}
	}

	s.Order.Phone = phone
	if err := m.store.RememberPhone(ctx, user.ID, phone); err != nil {
		m.log.Error("remember phone failed", zap.Int64("user_id", user.ID), zap.Error(err))
	}

	s.Step = StepOriginCity
	return []Message{m.cityPrompt(promptOriginCity)}
}

func (m *Machine) handleOriginCity(s *Session, in Input) []Message {
	if in.Intent == IntentBack {
		s.Step = StepPhone
		return []Message{m.phonePrompt(s)}
	}

	city := catalog.Normalize(in.Text)
	if !catalog.IsCity(city) {
		return []Message{withText(m.cityPrompt(promptOriginCity), errCityUnknown)}
	}

	if s.Order.OriginCity != city {
		s.OriginPage = 1
	}
	s.Order.OriginCity = city
	s.Step = StepOriginDistrict
	return []Message{m.districtPrompt(s, legOrigin)}
}

func (m *Machine) handleOriginDistrict(s *Session, in Input) []Message {
	switch in.Intent {
	case IntentBack:
		s.Order.OriginDistrict = ""
		s.Step = StepOriginCity
		return []Message{m.cityPrompt(promptOriginCity)}
	case IntentNextPage:
		s.OriginPage++
		return []Message{m.districtPrompt(s, legOrigin)}
	case IntentPrevPage:
		s.OriginPage--
		return []Message{m.districtPrompt(s, legOrigin)}
	case IntentPageIndicator:
		return []Message{m.districtPrompt(s, legOrigin)}
	}

	district, ok := m.acceptDistrict(s.Order.OriginCity, in.Text)
	if !ok {
		// Unrecognized selection: re-render the current page untouched.
		return []Message{m.districtReject(s, legOrigin)}
	}

	s.Order.OriginDistrict = district
	s.DestinationPage = 1
	s.Step = StepDestinationCity
	return []Message{m.cityPrompt(promptDestCity)}
}

func (m *Machine) handleDestinationCity(s *Session, in Input) []Message {
	if in.Intent == IntentBack {
		s.Step = StepOriginDistrict
		return []Message{m.districtPrompt(s, legOrigin)}
	}

	city := catalog.Normalize(in.Text)
	if !catalog.IsCity(city) {
		return []Message{withText(m.cityPrompt(promptDestCity), errCityUnknown)}
	}
	if city == s.Order.OriginCity {
		return []Message{withText(m.cityPrompt(promptDestCity), errCitySame)}
	}

	if s.Order.DestinationCity != city {
		s.DestinationPage = 1
	}
	s.Order.DestinationCity = city
	s.Step = StepDestinationDistrict
	return []Message{m.districtPrompt(s, legDestination)}
}

func (m *Machine) handleDestinationDistrict(s *Session, in Input) []Message {
	switch in.Intent {
	case IntentBack:
		s.Order.DestinationDistrict = ""
		s.Step = StepDestinationCity
		return []Message{m.cityPrompt(promptDestCity)}
	case IntentNextPage:
		s.DestinationPage++
		return []Message{m.districtPrompt(s, legDestination)}
	case IntentPrevPage:
		s.DestinationPage--
		return []Message{m.districtPrompt(s, legDestination)}
	case IntentPageIndicator:
		return []Message{m.districtPrompt(s, legDestination)}
	}

	district, ok := m.acceptDistrict(s.Order.DestinationCity, in.Text)
	if !ok {
		return []Message{m.districtReject(s, legDestination)}
	}

	s.Order.DestinationDistrict = district
	s.Step = StepPassengers
	return []Message{m.choicePrompt()}
}

func (m *Machine) handlePassengers(ctx context.Context, user User, s *Session, in Input) []Message {
	if in.Intent == IntentBack {
		s.Order.DestinationDistrict = ""
		s.Step = StepDestinationDistrict
		return []Message{m.districtPrompt(s, legDestination)}
	}

	if IsCargoOnly(in.Text) {
		s.Order.Passengers = 0
		s.Order.Cargo = true
		return m.finalize(ctx, user, s)
	}

	n, ok := ParsePassengerCount(in.Text)
	if !ok {
		return []Message{withText(m.choicePrompt(), errChoice)}
	}

	s.Order.Passengers = n
	s.Order.Cargo = false
	s.Step = StepNote
	return []Message{m.notePrompt()}
}

func (m *Machine) handleNote(ctx context.Context, user User, s *Session, in Input) []Message {
	if in.Intent == IntentBack {
		s.Step = StepPassengers
		return []Message{m.choicePrompt()}
	}

	// Cargo picked this late still finalizes immediately, no note.
	if IsCargoOnly(in.Text) {
		s.Order.Passengers = 0
		s.Order.Cargo = true
		s.Order.Note = nil
		return m.finalize(ctx, user, s)
	}

	if in.Text == SkipLabel {
		s.Order.Note = nil
		return m.finalize(ctx, user, s)
	}

	note, ok := SanitizeFreeText(in.Text, NoteMinLen, NoteMaxLen)
	if !ok {
		return []Message{withText(m.notePrompt(), errNote)}
	}

	s.Order.Note = pointer.To(note)
	return m.finalize(ctx, user, s)
}

// finalize persists the order, notifies the operator and confirms to
// the user. Persistence and notification failures are independent and
// never abort the conversation; a failed save downgrades the
// confirmation instead of pretending success.
func (m *Machine) finalize(ctx context.Context, user User, s *Session) []Message {
	order := &Order{
		RefCode:             uuid.NewString(),
		UserID:              user.ID,
		DisplayName:         user.DisplayName,
		Handle:              user.Handle,
		Phone:               s.Order.Phone,
		OriginCity:          s.Order.OriginCity,
		OriginDistrict:      s.Order.OriginDistrict,
		DestinationCity:     s.Order.DestinationCity,
		DestinationDistrict: s.Order.DestinationDistrict,
		Passengers:          s.Order.Passengers,
		Cargo:               s.Order.Cargo,
		Note:                s.Order.Note,
		CreatedAt:           m.now(),
	}

	saveErr := m.store.SaveOrder(ctx, order)
	if saveErr != nil {
		m.log.Error("order save failed",
			zap.Int64("user_id", user.ID), zap.String("ref", order.RefCode), zap.Error(saveErr))
	}

	if err := m.notifier.NotifyOperator(ctx, order); err != nil {
		m.log.Error("operator notify failed",
			zap.Int64("user_id", user.ID), zap.String("ref", order.RefCode), zap.Error(err))
	}

	s.Reset()

	if saveErr != nil {
		return []Message{{Text: msgAcceptedPending, RemoveKeyboard: true}}
	}
	return []Message{{Text: m.confirmText(order), RemoveKeyboard: true}}
}

func (m *Machine) confirmText(o *Order) string {
	return fmt.Sprintf(
		"✅ Буюртма қабул қилинди! (№ %s)\n\n"+
			"📞 Телефон: %s\n"+
			"🚖 Йўналиш: %s (%s) → %s (%s)\n"+
			"👥 Одам: %s\n"+
			"📦 Почта: %s\n"+
			"📝 Изоҳ: %s\n\n"+
			"🧑‍💼 Оператор рақами: %s\n"+
			"Янги буюртма учун /start ни босинг.",
		shortRef(o.RefCode), o.Phone,
		o.OriginCity, o.OriginDistrict, o.DestinationCity, o.DestinationDistrict,
		passengersText(o), cargoText(o), noteText(o), m.operatorPhone,
	)
}

// FormatOrderSummary renders the operator-facing order text. The
// operator message carries the phone and route but not the user's
// handle or id.
func FormatOrderSummary(o *Order) string {
	return fmt.Sprintf(
		"🆕 Янги буюртма № %s\n"+
			"📞 Телефон: %s\n"+
			"🚖 Йўналиш: %s (%s) → %s (%s)\n"+
			"👥 Одам: %s\n"+
			"📦 Почта: %s\n"+
			"📝 Изоҳ: %s",
		shortRef(o.RefCode), o.Phone,
		o.OriginCity, o.OriginDistrict, o.DestinationCity, o.DestinationDistrict,
		passengersText(o), cargoText(o), noteText(o),
	)
}

func shortRef(ref string) string {
	if len(ref) > 8 {
		return ref[:8]
	}
	return ref
}

func passengersText(o *Order) string {
	if o.Passengers == 0 {
		return "-"
	}
	return fmt.Sprintf("%d", o.Passengers)
}

func cargoText(o *Order) string {
	if o.Cargo {
		return "Бор"
	}
	return "Йўқ"
}

func noteText(o *Order) string {
	if o.Note == nil || *o.Note == "" {
		return "-"
	}
	return *o.Note
}

type leg int

const (
	legOrigin leg = iota
	legDestination
)

// acceptDistrict validates a district selection for city. Cities with
// a catalog require an exact member (star marker allowed); cities
// without one take sanitized free text.
func (m *Machine) acceptDistrict(city, text string) (string, bool) {
	list := catalog.DistrictsFor(city)
	if len(list) == 0 {
		return SanitizeFreeText(text, DistrictMinLen, DistrictMaxLen)
	}
	name := StripStar(text)
	if !catalog.HasDistrict(city, name) {
		return "", false
	}
	return name, true
}

func (m *Machine) phonePrompt(s *Session) Message {
	choices := [][]string{{ContactLabel}}
	if s.LastPhone != "" {
		choices = append(choices, []string{s.LastPhone})
	}
	choices = append(choices, []string{BackLabel})
	return Message{Text: promptPhone, Choices: choices, ContactButton: true}
}

func (m *Machine) cityPrompt(text string) Message {
	var choices [][]string
	for _, c := range catalog.Cities() {
		choices = append(choices, []string{c})
	}
	choices = append(choices, []string{BackLabel})
	return Message{Text: text, Choices: choices}
}

func (m *Machine) choicePrompt() Message {
	return Message{
		Text: promptChoice,
		Choices: [][]string{
			{"1", "2", "3"},
			{"4", "5+"},
			{CargoLabel},
			{BackLabel},
		},
	}
}

func (m *Machine) notePrompt() Message {
	return Message{
		Text: promptNote,
		Choices: [][]string{
			{SkipLabel},
			{BackLabel},
		},
	}
}

// districtPrompt renders the current page of the district keyboard for
// one leg, clamping the stored cursor as a side effect so repeated
// next/previous presses cannot walk out of range.
func (m *Machine) districtPrompt(s *Session, l leg) Message {
	city := s.Order.OriginCity
	page := &s.OriginPage
	header := promptPickup
	if l == legDestination {
		city = s.Order.DestinationCity
		page = &s.DestinationPage
		header = promptDrop
	}

	list := catalog.DistrictsFor(city)
	if len(list) == 0 {
		return Message{
			Text:    fmt.Sprintf("%s\n%s", header, promptDistrictFree),
			Choices: [][]string{{BackLabel}},
		}
	}

	p := Paginate(list, *page, DefaultPageSize, DefaultColumns, s.LastDistricts[city])
	*page = p.Number

	choices := append([][]string{}, p.Rows...)
	choices = append(choices, p.Nav, []string{BackLabel})
	return Message{
		Text:    fmt.Sprintf("%s\n🏙 %s %s", header, city, promptDistricts),
		Choices: choices,
	}
}

func (m *Machine) districtReject(s *Session, l leg) Message {
	city := s.Order.OriginCity
	if l == legDestination {
		city = s.Order.DestinationCity
	}
	msg := m.districtPrompt(s, l)
	if len(catalog.DistrictsFor(city)) == 0 {
		msg.Text = errDistrictFree
	}
	return msg
}

func withText(msg Message, text string) Message {
	msg.Text = text
	return msg
}
