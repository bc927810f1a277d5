package places

import (
	"context"

	"github.com/nathoo/wayfarer/engine/dialogue"
	"github.com/nathoo/wayfarer/engine/prompt"
	"github.com/nathoo/wayfarer/engine/world"
)

// Square is a gathering place where the guest can talk to people.
type Square struct {
	base
	book *dialogue.Book
}

// NewSquare creates a square with people and their lines.
func NewSquare(name, description, greeting string, book *dialogue.Book) *Square {
	if book == nil {
		book = dialogue.NewBook(nil)
	}
	return &Square{base: base{name: name, description: description, greeting: greeting}, book: book}
}

func (q *Square) Kind() string { return KindSquare }

// People lists who can be talked to.
func (q *Square) People() []string { return q.book.People() }

var squareMenu = []string{"Talk to someone", "Leave the square"}

// Enter runs the square menu until the guest leaves.
func (q *Square) Enter(ctx context.Context, guest *world.Entity, io prompt.IO) error {
	q.arrive(io, KindSquare, guest)

	for {
		choice, err := menu(ctx, io, "What would you like to do?", squareMenu)
		if err != nil {
			return err
		}
		if choice == 2 {
			q.leave(io, KindSquare)
			return nil
		}

		if q.book.Len() == 0 {
			io.Say("There is no one here to talk to.")
			continue
		}
		io.Say("You see:")
		io.Say(bulleted(q.book.People()))
		who, err := io.Ask(ctx, "Who would you like to talk to?")
		if err != nil {
			return err
		}
		line, ok := q.book.Line(who)
		if !ok {
			io.Fail("There is no one called %s here.", who)
			continue
		}
		io.Sayf("%s says: %s", who, line)
	}
}
