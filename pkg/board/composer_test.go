package board

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/Nourbaganne/Esport-post-board/pkg/client"
)

type fakeInserter struct {
	calls []client.PostDraft
	err   error
}

func (f *fakeInserter) CreatePost(_ context.Context, draft client.PostDraft) (*client.Post, error) {
	f.calls = append(f.calls, draft)
	if f.err != nil {
		return nil, f.err
	}
	return &client.Post{ID: uuid.New()}, nil
}

func filledComposer(inserter Inserter) *Composer {
	c := NewComposer(inserter)
	c.SetGame("Valorant")
	c.Role = "Duelist"
	c.Rank = "Gold"
	c.Region = "NA East"
	c.SetDescription("Looking for a duo partner, evenings EU time")
	return c
}

func TestSubmitRejectsMissingFieldsBeforeNetwork(t *testing.T) {
	cases := []struct {
		name  string
		strip func(*Composer)
	}{
		{"empty game", func(c *Composer) { c.Game = "" }},
		{"empty role", func(c *Composer) { c.Role = "" }},
		{"empty region", func(c *Composer) { c.Region = "" }},
		{"empty description", func(c *Composer) { c.Description = "" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			inserter := &fakeInserter{}
			c := filledComposer(inserter)
			tc.strip(c)

			_, err := c.Submit(context.Background())
			if !errors.Is(err, ErrMissingFields) {
				t.Fatalf("got %v, want ErrMissingFields", err)
			}
			if len(inserter.calls) != 0 {
				t.Fatalf("validation failure must not reach the server")
			}
		})
	}
}

func TestRankIsOptional(t *testing.T) {
	inserter := &fakeInserter{}
	c := filledComposer(inserter)
	c.Rank = ""

	if _, err := c.Submit(context.Background()); err != nil {
		t.Fatalf("submit without rank: %v", err)
	}
	if len(inserter.calls) != 1 {
		t.Fatalf("got %d create calls, want 1", len(inserter.calls))
	}
	if inserter.calls[0].Rank != "" {
		t.Fatalf("empty rank must stay empty in the draft")
	}
}

func TestChangingGameResetsRoleAndRank(t *testing.T) {
	c := filledComposer(&fakeInserter{})

	c.SetGame("CS2")

	if c.Role != "" || c.Rank != "" {
		t.Fatalf("role/rank survived a game change: role=%q rank=%q", c.Role, c.Rank)
	}
	if c.Region != "NA East" || c.Description == "" {
		t.Fatalf("game change must not touch other fields")
	}
}

func TestDescriptionCappedAtInput(t *testing.T) {
	c := NewComposer(&fakeInserter{})
	c.SetDescription(strings.Repeat("a", DescriptionLimit+50))

	if got := len([]rune(c.Description)); got != DescriptionLimit {
		t.Fatalf("description length %d, want %d", got, DescriptionLimit)
	}
}

func TestSubmitFailureKeepsFormState(t *testing.T) {
	inserter := &fakeInserter{err: errors.New("service unavailable")}
	c := filledComposer(inserter)

	_, err := c.Submit(context.Background())
	if err == nil {
		t.Fatalf("expected submit error")
	}

	if c.Game != "Valorant" || c.Role != "Duelist" || c.Rank != "Gold" ||
		c.Region != "NA East" || c.Description == "" {
		t.Fatalf("failed submit must preserve the entered form")
	}
}

func TestSubmitSendsDraft(t *testing.T) {
	inserter := &fakeInserter{}
	c := filledComposer(inserter)

	if _, err := c.Submit(context.Background()); err != nil {
		t.Fatalf("submit: %v", err)
	}

	draft := inserter.calls[0]
	if draft.Game != "Valorant" || draft.Role != "Duelist" ||
		draft.Rank != "Gold" || draft.Region != "NA East" {
		t.Fatalf("draft does not match the form: %+v", draft)
	}
}
