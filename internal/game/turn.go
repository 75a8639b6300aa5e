package game

import (
	"glory-to-rome-backend/internal/game/action"
	"glory-to-rome-backend/internal/game/card"
	"glory-to-rome-backend/internal/game/player"
)

// handleThinkerOrLead resolves the leader's opening choice. Thinking
// queues the pre-Thinker building options and the THINKERTYPE response;
// leading queues the LEADROLE response.
func (s *GameState) handleThinkerOrLead(a action.GameAction) error {
	think, err := a.Bool(0)
	if err != nil {
		return payloadErrf("%v", err)
	}

	if think {
		s.pushThinkerFrames(a.Player)
	} else {
		s.pushFront(Expected{Kind: action.LeadRole, Player: a.Player})
	}
	return nil
}

// pushThinkerFrames queues the optional pre-Thinker discards (Latrine,
// Vomitorium) ahead of the THINKERTYPE response itself
func (s *GameState) pushThinkerFrames(idx int) {
	frames := []Expected{}
	if s.hasPower(idx, "Vomitorium") {
		frames = append(frames, Expected{Kind: action.UseVomitorium, Player: idx})
	}
	if s.hasPower(idx, "Latrine") {
		frames = append(frames, Expected{Kind: action.UseLatrine, Player: idx})
	}
	frames = append(frames, Expected{Kind: action.ThinkerType, Player: idx})
	s.pushFront(frames...)
}

// handleLeadRole validates the leader's card set, commits it to camp,
// and queues one FOLLOWROLE response per opponent in clockwise order.
// Payload: (role, nActions, cards...).
func (s *GameState) handleLeadRole(a action.GameAction) error {
	role, nActions, cards, err := s.leadPayload(a)
	if err != nil {
		return err
	}
	p := s.players[a.Player]

	if err := s.validateRoleCards(p, role, nActions, cards); err != nil {
		return err
	}

	for _, id := range cards {
		if err := player.MoveCard(id, p.Hand(), p.Camp()); err != nil {
			return payloadErrf("%v", err)
		}
	}
	p.SetNCampActions(nActions)
	s.roleLed = role

	s.pendingFollows = s.NumPlayers() - 1
	s.followers = []int{}
	for _, idx := range s.clockwiseFrom(a.Player) {
		s.pushBack(Expected{Kind: action.FollowRole, Player: idx})
	}
	return nil
}

// handleFollowRole resolves one opponent's choice to think or follow.
// Payload: (think, nActions, cards...).
func (s *GameState) handleFollowRole(a action.GameAction) error {
	think, err := a.Bool(0)
	if err != nil {
		return payloadErrf("%v", err)
	}

	if think {
		s.pendingFollows--
		s.pushThinkerFrames(a.Player)
		s.maybeScheduleRoleActions()
		return nil
	}

	nActions, err := a.Int(1)
	if err != nil {
		return payloadErrf("%v", err)
	}
	cards, err := a.Cards(2)
	if err != nil {
		return payloadErrf("%v", err)
	}
	p := s.players[a.Player]
	if err := s.validateRoleCards(p, s.roleLed, nActions, cards); err != nil {
		return err
	}

	s.pendingFollows--
	for _, id := range cards {
		if err := player.MoveCard(id, p.Hand(), p.Camp()); err != nil {
			return payloadErrf("%v", err)
		}
	}
	p.SetNCampActions(nActions)
	s.followers = append(s.followers, a.Player)
	s.maybeScheduleRoleActions()
	return nil
}

func (s *GameState) leadPayload(a action.GameAction) (card.Role, int, []card.ID, error) {
	roleName, err := a.String(0)
	if err != nil {
		return "", 0, nil, payloadErrf("%v", err)
	}
	role := card.Role(roleName)
	if !card.ValidRole(role) {
		return "", 0, nil, payloadErrf("unknown role %q", roleName)
	}
	nActions, err := a.Int(1)
	if err != nil {
		return "", 0, nil, payloadErrf("%v", err)
	}
	cards, err := a.Cards(2)
	if err != nil {
		return "", 0, nil, payloadErrf("%v", err)
	}
	return role, nActions, cards, nil
}

// validateRoleCards checks a lead or follow card set against the
// petition and Palace rules. The set must decompose into exactly
// nActions groups, each either a single card matching the role (or a
// Jack) or a petition of petitionSize same-role cards. More than one
// group requires a completed Palace.
func (s *GameState) validateRoleCards(p *player.Player, role card.Role, nActions int, cards []card.ID) error {
	if len(cards) == 0 {
		return payloadErrf("no cards named")
	}
	if nActions < 1 {
		return ruleErrf("camp action count %d must be at least 1", nActions)
	}

	seen := map[card.ID]bool{}
	for _, id := range cards {
		if seen[id] {
			return payloadErrf("card %s named twice", id)
		}
		seen[id] = true
		if !p.Hand().Contains(id) {
			return payloadErrf("card %s is not in hand", id)
		}
	}

	idx := s.indexOf(p)
	petitionSize := 3
	if s.hasPower(idx, "Circus") {
		petitionSize = 2
	}

	// Decompose: Jacks and on-role cards can stand alone; off-role
	// cards must form whole petitions; on-role cards may be grouped
	// into petitions to absorb the remainder.
	jacks := 0
	onRole := 0
	offRole := map[card.Role]int{}
	for _, id := range cards {
		switch {
		case id.IsJack():
			jacks++
		case id.Role() == role:
			onRole++
		default:
			offRole[id.Role()]++
		}
	}

	offSets := 0
	for r, count := range offRole {
		if count%petitionSize != 0 {
			return ruleErrf("%d %s cards do not form whole petitions of %d", count, r, petitionSize)
		}
		offSets += count / petitionSize
	}

	// Try every split of the on-role cards into petitions and singles
	valid := false
	for petitions := 0; petitions*petitionSize <= onRole; petitions++ {
		singles := onRole - petitions*petitionSize
		if jacks+offSets+petitions+singles == nActions {
			valid = true
			break
		}
	}
	if !valid {
		return ruleErrf("cards do not decompose into %d camp actions for %s", nActions, role)
	}

	if nActions > 1 && !s.hasPower(idx, "Palace") {
		return ruleErrf("multiple camp actions require a completed Palace")
	}
	return nil
}

func (s *GameState) indexOf(p *player.Player) int {
	for i, q := range s.players {
		if q == p {
			return i
		}
	}
	return -1
}

// maybeScheduleRoleActions appends the role-action frames once every
// follower has answered: the leader's actions first, then each
// follower's, in clockwise order. Clientele of the led role contribute
// one action apiece after their controller's camp actions.
func (s *GameState) maybeScheduleRoleActions() {
	if s.pendingFollows > 0 {
		return
	}

	performers := append([]int{s.leader}, s.followers...)
	for _, idx := range performers {
		p := s.players[idx]
		total := p.NCampActions() + s.clienteleActions(idx, s.roleLed)
		total += s.influenceBonusActions(idx, s.roleLed)
		if total == 0 {
			continue
		}
		s.pushRoleFrames(idx, s.roleLed, total)
		if s.roleLed == card.RoleArchitect && s.hasPower(idx, "Stairway") {
			s.pushBack(Expected{Kind: action.Stairway, Player: idx})
		}
	}
}

// pushRoleFrames appends the expected frames for n actions of a role.
// Legionary is a single frame whose width is the action count; every
// other role gets one frame per action. Fountain owners are offered the
// deck draw before each Craftsman action.
func (s *GameState) pushRoleFrames(idx int, role card.Role, n int) {
	switch role {
	case card.RoleLegionary:
		s.pushBack(Expected{Kind: action.Legionary, Player: idx, N: n})
	case card.RoleCraftsman:
		for i := 0; i < n; i++ {
			if s.hasPower(idx, "Fountain") {
				s.pushBack(Expected{Kind: action.UseFountain, Player: idx})
			}
			s.pushBack(Expected{Kind: action.Craftsman, Player: idx})
		}
	case card.RoleLaborer:
		for i := 0; i < n; i++ {
			s.pushBack(Expected{Kind: action.Laborer, Player: idx})
		}
	case card.RoleArchitect:
		for i := 0; i < n; i++ {
			s.pushBack(Expected{Kind: action.Architect, Player: idx})
		}
	case card.RoleMerchant:
		for i := 0; i < n; i++ {
			s.pushBack(Expected{Kind: action.Merchant, Player: idx})
		}
	case card.RolePatron:
		for i := 0; i < n; i++ {
			s.pushBack(Expected{Kind: action.PatronFromPool, Player: idx})
		}
	}
}

// clienteleActions counts the bonus actions a player's clientele grant
// for the led role. Ludus Magna makes Merchant clients wild, the
// Storeroom makes every client a Laborer, and the Circus Maximus doubles
// each client's contribution.
func (s *GameState) clienteleActions(idx int, role card.Role) int {
	if role == "" {
		return 0
	}
	p := s.players[idx]
	perClient := 1
	if s.hasPower(idx, "Circus Maximus") {
		perClient = 2
	}
	total := 0
	for _, client := range p.Clientele().Cards() {
		match := client.Role() == role
		if !match && s.hasPower(idx, "Ludus Magna") && client.Role() == card.RoleMerchant {
			match = true
		}
		if !match && s.hasPower(idx, "Storeroom") && role == card.RoleLaborer {
			match = true
		}
		if match {
			total += perClient
		}
	}
	return total
}

// influenceBonusActions grants the influence-scaled action bonuses of
// the Amphitheatre and Theater (Craftsman), Foundry (Laborer) and
// Garden (Patron). The bonus applies only when the player earned at
// least one camp action of the role; unwanted extras can be passed.
func (s *GameState) influenceBonusActions(idx int, role card.Role) int {
	p := s.players[idx]
	if p.NCampActions() == 0 {
		return 0
	}
	bonus := 0
	switch role {
	case card.RoleCraftsman:
		if s.hasPower(idx, "Amphitheatre") {
			bonus += p.Influence()
		}
		if s.hasPower(idx, "Theater") {
			bonus += p.Influence()
		}
	case card.RoleLaborer:
		if s.hasPower(idx, "Foundry") {
			bonus += p.Influence()
		}
	case card.RolePatron:
		if s.hasPower(idx, "Garden") {
			bonus += p.Influence()
		}
	}
	return bonus
}

// scheduleEndOfTurn queues the per-player end-of-turn frames after the
// last role action drains: Sewer keeps, then the Academy's optional
// Thinker for players who performed a Craftsman action.
func (s *GameState) scheduleEndOfTurn() {
	order := append([]int{s.leader}, s.clockwiseFrom(s.leader)...)
	for _, idx := range order {
		p := s.players[idx]
		if s.hasPower(idx, "Sewer") && s.campOrdersCount(idx) > 0 {
			s.pushBack(Expected{Kind: action.UseSewer, Player: idx})
		}
		if s.hasPower(idx, "Academy") && p.PerformedCraftsman() {
			s.pushBack(Expected{Kind: action.ThinkerType, Player: idx, Opt: true})
		}
	}
}

// campOrdersCount counts the non-Jack cards in a player's camp
func (s *GameState) campOrdersCount(idx int) int {
	count := 0
	for _, id := range s.players[idx].Camp().Cards() {
		if !id.IsJack() {
			count++
		}
	}
	return count
}

// cleanupAndAdvance discards camps, resets per-turn state, advances the
// leader and opens the next turn. Jacks return to the jack pile unless
// an opponent's completed Senate claims them; orders cards go to the
// pool.
func (s *GameState) cleanupAndAdvance() {
	for idx, p := range s.players {
		for _, id := range p.Camp().Cards() {
			if err := p.Camp().Remove(id); err != nil {
				continue
			}
			if id.IsJack() {
				if taker, ok := s.senateTaker(idx); ok {
					s.players[taker].Hand().Add(id)
				} else {
					s.jackPile.Add(id)
				}
			} else {
				s.pool.Add(id)
			}
		}
		p.ResetTurn()
	}

	s.roleLed = ""
	s.followers = nil
	s.pendingFollows = 0
	s.endOfTurnScheduled = false
	s.turn++
	s.leader = (s.leader + 1) % s.NumPlayers()
	s.pushBack(Expected{Kind: action.ThinkerOrLead, Player: s.leader})
}

// senateTaker returns the first opponent clockwise from the jack's
// owner holding a completed Senate, if any
func (s *GameState) senateTaker(owner int) (int, bool) {
	for _, idx := range s.clockwiseFrom(owner) {
		if s.hasPower(idx, "Senate") {
			return idx, true
		}
	}
	return 0, false
}
