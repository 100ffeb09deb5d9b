package console

import (
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/wfunc/yahtzee/models"
	"github.com/wfunc/yahtzee/score"
)

func newTestConsole(input string) (*Console, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return New(strings.NewReader(input), out, "q"), out
}

func isYes(input string) bool { return input == "yes" }

func TestRequest_RetriesUntilValid(t *testing.T) {
	c, out := newTestConsole("no\nmaybe\nyes\n")

	got, err := c.Request("ok? ", isYes, "say yes")
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	if got != "yes" {
		t.Errorf("Expected yes, got %q", got)
	}
	if n := strings.Count(out.String(), "say yes"); n != 2 {
		t.Errorf("Expected 2 error messages, got %d", n)
	}
	if n := strings.Count(out.String(), "ok? "); n != 3 {
		t.Errorf("Expected 3 prompts, got %d", n)
	}
}

func TestRequest_Quit(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"quit token", "q\n"},
		{"quit token upper case", "  Q  \n"},
		{"end of input", ""},
		{"end of input after bad answer", "no\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestConsole(tt.input)
			if _, err := c.Request("ok? ", isYes, "say yes"); !errors.Is(err, ErrQuit) {
				t.Errorf("Expected ErrQuit, got %v", err)
			}
		})
	}
}

func TestRequest_LastLineWithoutNewline(t *testing.T) {
	c, _ := newTestConsole("yes")
	if got, err := c.Request("ok? ", isYes, "say yes"); err != nil || got != "yes" {
		t.Errorf("Expected yes, got %q, %v", got, err)
	}
}

func TestRequest_CompletesUniquePrefix(t *testing.T) {
	suggestions := []string{"Fours", "Four of a kind", "Full house"}
	valid := func(s string) bool {
		for _, v := range suggestions {
			if v == s {
				return true
			}
		}
		return false
	}

	c, out := newTestConsole("fou\nfull\n")
	got, err := c.Request("category? ", valid, "bad", suggestions...)
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	if got != "Full house" {
		t.Errorf("Expected Full house, got %q", got)
	}
	if !strings.Contains(out.String(), "bad") {
		t.Error("Expected the ambiguous prefix to be rejected first")
	}
}

func TestPickRethrow(t *testing.T) {
	hand := models.HandOf(1, 2, 3, 4, 5).Keep([]int{1, 2, 3})

	tests := []struct {
		name  string
		input string
		want  []int
	}{
		{"keep everything", "\n", nil},
		{"free dice", "1,3\n", []int{1, 3}},
		{"spaces and duplicates", " 2 , 2 \n", []int{2}},
		{"fixed die rejected first", "4\n1\n", []int{1}},
		{"out of range rejected first", "6\n0\nx\n2,3\n", []int{2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestConsole(tt.input)
			got, err := c.PickRethrow(hand)
			if err != nil {
				t.Fatalf("PickRethrow failed: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestChooseCategory(t *testing.T) {
	hand := models.HandOf(2, 3, 4, 5, 6)
	options := score.Preview(hand, []models.Category{models.Twos, models.LargeStraight, models.Yahtzee})

	c, out := newTestConsole("Chance\nlarge STRAIGHT\n")
	got, err := c.ChooseCategory(models.NewPlayer(Palette[0]), hand, options)
	if err != nil {
		t.Fatalf("ChooseCategory failed: %v", err)
	}
	if got != models.LargeStraight {
		t.Errorf("Expected Large straight, got %s", got)
	}

	text := out.String()
	if !strings.Contains(text, "Large straight (Points: 50)") {
		t.Errorf("Expected the preview for Large straight, got %q", text)
	}
	if !strings.Contains(text, "Yahtzee (Points: ✘)") {
		t.Errorf("Expected a scratched preview for Yahtzee, got %q", text)
	}
	if !strings.Contains(text, "Please enter a valid category") {
		t.Error("Expected a category that is not open to be rejected")
	}
}

func TestSetup(t *testing.T) {
	c, _ := newTestConsole("0\n2\npurple\nBlue\nblue\ncyan\n")

	players, err := c.Setup(7)
	if err != nil {
		t.Fatalf("Setup failed: %v", err)
	}
	if len(players) != 2 {
		t.Fatalf("Expected 2 players, got %d", len(players))
	}
	if players[0].Color.Label != "blue" || players[1].Color.Label != "cyan" {
		t.Errorf("Expected blue and cyan, got %s and %s", players[0].Name(), players[1].Name())
	}
	if got := len(players[0].Sheet); got != models.SheetSize {
		t.Errorf("Expected a %d-row sheet, got %d", models.SheetSize, got)
	}
}

func TestSeat(t *testing.T) {
	c, _ := newTestConsole("")

	players, err := c.Seat([]string{"Red", "white"})
	if err != nil {
		t.Fatalf("Seat failed: %v", err)
	}
	if players[0].Color.Code == "" || players[1].Name() != "white" {
		t.Errorf("Expected palette colors, got %+v", players)
	}

	if _, err := c.Seat([]string{"red", "RED"}); err == nil {
		t.Error("Expected a repeated color to fail")
	}
	if _, err := c.Seat([]string{"purple"}); err == nil {
		t.Error("Expected an unknown color to fail")
	}
}

func TestShowWinners(t *testing.T) {
	c, out := newTestConsole("")
	c.ShowWinners([]models.Player{models.NewPlayer(Palette[0]), models.NewPlayer(Palette[3])})

	if !strings.Contains(out.String(), "It's a tie!") {
		t.Errorf("Expected a tie announcement, got %q", out.String())
	}
}

func TestScoresUpdated(t *testing.T) {
	c, out := newTestConsole("")
	p := models.NewPlayer(Palette[1])
	p.Sheet, _ = p.Sheet.With(models.Yahtzee, models.Scratched())

	c.ScoresUpdated([]models.Player{p})

	text := out.String()
	if !strings.Contains(text, "Score of green") {
		t.Errorf("Expected a column for green, got %q", text)
	}
	for _, line := range strings.Split(text, "\n") {
		if strings.HasPrefix(line, "Yahtzee") && !strings.Contains(line, "✘") {
			t.Errorf("Expected a scratched Yahtzee row, got %q", line)
		}
	}
}
