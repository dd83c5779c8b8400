// Package game runs the two-player three-card comparison game.
//
// The main type is Session, which owns the remaining deck, both players'
// current hands and their cumulative round-win tallies.
//
// # Basic Usage
//
//	s := game.NewSession()
//	result, err := s.Draw()
//	if errors.Is(err, deck.ErrInsufficientCards) {
//	    s.Reset()
//	}
//	fmt.Println(result.Outcome, s.Score(game.Player1), s.Score(game.Player2))
//
// # Deterministic Testing
//
// Shuffles draw from an injected randutil.Source:
//
//	s := game.NewSession(game.WithSeed(42))
//	s := game.NewSession(game.WithSource(randutil.NewSequence(0, 3, 1)))
//
// A known deal can be replayed directly:
//
//	s := game.NewSessionWithDeck(deck.MustParseCards("KsKh2c As5h9d"))
//
// # Rules
//
// Each Draw deals three cards to player 1, then three to player 2, from the
// front of the deck. Hands are scored by evaluator.Score and the strictly
// higher score earns one point; ties earn nothing. A Draw needs six cards, so
// a 52-card deck supports eight rounds before Reset is required.
package game
