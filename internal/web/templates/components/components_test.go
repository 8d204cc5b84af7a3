package components

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pr-poehali-dev/major-registration-portal/internal/model"
)

func render(t *testing.T, c templ.Component) *goquery.Document {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, c.Render(context.Background(), &buf))
	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)
	return doc
}

func testPlayer() *model.Player {
	return &model.Player{
		ID:             "2",
		FirstName:      "Николай",
		LastName:       "Петров",
		Nickname:       "<b>electronic</b>",
		FavoriteWeapon: "AK-47",
		FavoritePlayer: "s1mple",
		Stats: model.Stats{
			Kills: 1100, Deaths: 1000, Wins: 40, Losses: 20, Draws: 3,
			Tournaments: []string{"IEM Katowice 2024", "PGL Major Copenhagen"},
		},
	}
}

func TestRoleCard(t *testing.T) {
	doc := render(t, RoleCard(model.AdminRole{}, "tab-7"))

	form := doc.Find("form.role-card.role-card-admin")
	require.Equal(t, 1, form.Length())
	assert.Equal(t, "/role", form.AttrOr("action", ""))
	assert.Equal(t, "admin", form.Find("input[name=role]").AttrOr("value", ""))
	assert.Equal(t, "tab-7", form.Find("input[name=tab]").AttrOr("value", ""))
	assert.Equal(t, "РУКОВОДИТЕЛЬ", form.Find(".role-title").Text())
}

func TestTournamentCard(t *testing.T) {
	doc := render(t, TournamentCard(model.Tournament{
		ID:     "t1",
		Name:   "IEM Katowice 2025",
		Date:   model.NewDate(2025, time.February, 15),
		Time:   "18:00",
		Status: model.TournamentLive,
	}))

	card := doc.Find("article.tournament-card")
	assert.Equal(t, "t1", card.AttrOr("data-id", ""))
	assert.Equal(t, "15.02.2025", card.Find(".tournament-date").Text())
	assert.Equal(t, "18:00", card.Find(".tournament-time").Text())

	badge := card.Find(".status-badge")
	assert.Equal(t, "В ЭФИРЕ", badge.Text())
	assert.Equal(t, "live", badge.AttrOr("data-status", ""))
	assert.True(t, badge.HasClass("bg-secondary"))
}

func TestPlayerCardEscapesText(t *testing.T) {
	doc := render(t, PlayerCard(testPlayer()))

	card := doc.Find("a.player-card")
	assert.Equal(t, "/players/2", card.AttrOr("href", ""))
	assert.Equal(t, "/players/2", card.AttrOr("hx-get", ""))
	assert.Equal(t, "#dialog", card.AttrOr("hx-target", ""))
	assert.Equal(t, "<b>electronic</b>", card.Find(".player-nickname").Text())
	assert.Equal(t, 0, card.Find("b").Length(), "nickname must not be parsed as markup")
	assert.Equal(t, "Киллы: 1100", card.Find(".player-kills").Text())
}

func TestPlayerDialog(t *testing.T) {
	d := &model.Dialog{}
	d.OpenFor(testPlayer())
	doc := render(t, PlayerDialog(d))

	dialog := doc.Find("#player-dialog")
	require.Equal(t, 1, dialog.Length())
	assert.Equal(t, "Николай Петров", dialog.Find(".dialog-subtitle").Text())
	assert.Equal(t, "1000", dialog.Find(".stat-deaths dd").Text())
	assert.Equal(t, "3", dialog.Find(".stat-draws dd").Text())
	assert.Equal(t, "1.10", dialog.Find(".stat-kd dd").Text())
	assert.Equal(t, 2, dialog.Find(".player-tournaments li").Length())
	assert.Equal(t, "/", dialog.Find("a.dialog-close").AttrOr("href", ""))
}

func TestPlayerDialogClosedRendersNothing(t *testing.T) {
	for name, d := range map[string]*model.Dialog{
		"nil":    nil,
		"closed": {},
	} {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, PlayerDialog(d).Render(context.Background(), &buf))
			assert.Empty(t, buf.String())
		})
	}
}

func TestManagementPanel(t *testing.T) {
	doc := render(t, ManagementPanel())

	var labels []string
	doc.Find("#management-panel button").Each(func(_ int, s *goquery.Selection) {
		labels = append(labels, s.Text())
	})
	assert.Equal(t, managementActions, labels)
}
