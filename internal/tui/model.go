package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mfehric/gamify/internal/engine"
	"github.com/mfehric/gamify/internal/ui"
)

type boardModel struct {
	ctx context.Context
	svc *engine.Service

	width  int
	height int

	expanded map[string]bool
	selected int

	lastLog string
	err     error
}

type toggledMsg struct {
	res *engine.ToggleResult
	err error
}

func newBoardModel(ctx context.Context, svc *engine.Service) boardModel {
	m := boardModel{
		ctx:      ctx,
		svc:      svc,
		expanded: map[string]bool{},
		lastLog:  "Loaded.",
	}
	// Default-expand quests with unfinished subtasks.
	st := svc.State()
	for _, q := range svc.Catalog().Quests {
		if !st.QuestComplete(q.ID) {
			m.expanded[q.ID] = true
		}
	}
	return m
}

func (m boardModel) Init() tea.Cmd {
	return nil
}

func (m boardModel) toggleCmd(questID, subtaskID string) tea.Cmd {
	return func() tea.Msg {
		res, err := m.svc.Toggle(m.ctx, questID, subtaskID)
		return toggledMsg{res: res, err: err}
	}
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case toggledMsg:
		if msg.err != nil {
			m.lastLog = "Toggle failed: " + msg.err.Error()
			return m, nil
		}
		m.lastLog = describeToggle(msg.res)
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			m.lastLog = fmt.Sprintf("Refreshed at %s.", time.Now().Format("15:04:05"))
			return m, nil
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down", "j":
			lines := m.boardLines()
			if m.selected < len(lines)-1 {
				m.selected++
			}
			return m, nil
		case "enter":
			lines := m.boardLines()
			if m.selected < 0 || m.selected >= len(lines) {
				return m, nil
			}
			line := lines[m.selected]
			if line.isQuest {
				m.expanded[line.questID] = !m.expanded[line.questID]
			}
			return m, nil
		case "c", " ":
			lines := m.boardLines()
			if m.selected < 0 || m.selected >= len(lines) {
				return m, nil
			}
			line := lines[m.selected]
			if line.isQuest {
				m.lastLog = "Select a subtask to toggle."
				return m, nil
			}
			return m, m.toggleCmd(line.questID, line.subtaskID)
		}
	}
	return m, nil
}

func describeToggle(res *engine.ToggleResult) string {
	if !res.Completed {
		return fmt.Sprintf("Reverted %s: %d XP", res.SubtaskID, res.XPDelta)
	}
	log := fmt.Sprintf("Completed %s: +%d XP", res.SubtaskID, res.XPDelta)
	if res.StreakBonus {
		log += fmt.Sprintf(" (x%.1f streak)", res.Multiplier)
	}
	if res.LevelUp {
		log += fmt.Sprintf(" — LEVEL UP: %s %s", res.Tier.Icon, res.Tier.Title)
	}
	for _, ach := range res.NewlyUnlocked {
		log += fmt.Sprintf(" — %s %s unlocked", ach.Icon, ach.Name)
	}
	return log
}

type boardLine struct {
	questID   string
	subtaskID string
	title     string
	xp        int
	done      bool
	isQuest   bool
	expanded  bool
}

func (m boardModel) boardLines() []boardLine {
	st := m.svc.State()
	cat := m.svc.Catalog()

	var out []boardLine
	for i := range cat.Quests {
		q := &cat.Quests[i]
		out = append(out, boardLine{
			questID:  q.ID,
			title:    q.Icon + " " + q.Name,
			done:     st.QuestComplete(q.ID),
			isQuest:  true,
			expanded: m.expanded[q.ID],
		})
		if !m.expanded[q.ID] {
			continue
		}
		ts := st.Tasks[q.ID]
		for _, sub := range q.Subtasks {
			done := ts != nil && ts.Subtasks[sub.ID]
			out = append(out, boardLine{
				questID:   q.ID,
				subtaskID: sub.ID,
				title:     sub.Name,
				xp:        sub.XP,
				done:      done,
			})
		}
	}
	if m.selected >= len(out) {
		m.selected = len(out) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
	return out
}

func (m boardModel) View() string {
	if m.err != nil {
		return "Error: " + m.err.Error() + "\n\nPress q to quit.\n"
	}

	header := m.renderHeader()
	sidebar := m.renderSidebar()
	main := m.renderMain()
	footer := m.renderFooter()

	// Simple 2-column layout.
	leftW := 28
	if m.width > 0 {
		maxLeft := m.width / 2
		if maxLeft < leftW {
			leftW = maxLeft
		}
		if leftW < 18 {
			leftW = 18
		}
	}

	linesLeft := strings.Split(sidebar, "\n")
	linesRight := strings.Split(main, "\n")
	max := len(linesLeft)
	if len(linesRight) > max {
		max = len(linesRight)
	}

	var body strings.Builder
	for i := 0; i < max; i++ {
		l := ""
		r := ""
		if i < len(linesLeft) {
			l = linesLeft[i]
		}
		if i < len(linesRight) {
			r = linesRight[i]
		}
		body.WriteString(padRight(l, leftW))
		body.WriteString("  ")
		body.WriteString(r)
		body.WriteString("\n")
	}

	return header + "\n" + body.String() + footer
}

func (m boardModel) renderHeader() string {
	st := m.svc.State()
	cat := m.svc.Catalog()
	p := st.Player

	tier := cat.TierForXP(p.TotalXP)
	cur := cat.CurrentLevelXP(tier.Level)
	next := cat.NextLevelXP(tier.Level)
	xpBar := ui.Bar(p.TotalXP-cur, next-cur, 24)
	hpBar := ui.Bar(p.HP, p.MaxHP, 14)

	return fmt.Sprintf("%s | %s %s (L%d) | XP %s %d/%d | %s %s %d/%d | %s %d",
		ui.Title.Render("Gamify"), tier.Icon, tier.Title, p.Level,
		xpBar, p.TotalXP, next,
		ui.IconHeart, hpBar, p.HP, p.MaxHP,
		ui.IconFire, p.Streak)
}

func (m boardModel) renderSidebar() string {
	st := m.svc.State()
	cat := m.svc.Catalog()

	lines := []string{ui.H2.Render("Danas")}
	lines = append(lines, fmt.Sprintf("Done: %d/%d", len(st.CompletedToday), cat.TotalSubtasks()))
	lines = append(lines, fmt.Sprintf("Multiplier: x%.1f", cat.Multiplier(st.Player.Streak)))
	lines = append(lines, "")
	lines = append(lines, ui.H2.Render("Achievements"))
	lines = append(lines, fmt.Sprintf("%s %d/%d", ui.IconTrophy, len(st.Achievements), len(cat.Rules)))
	lines = append(lines, "")
	lines = append(lines, ui.H2.Render("Keys"))
	lines = append(lines, "- ↑/↓ or j/k: move")
	lines = append(lines, "- enter: expand/collapse")
	lines = append(lines, "- c/space: toggle")
	lines = append(lines, "- q: quit")
	return strings.Join(lines, "\n")
}

func (m boardModel) renderMain() string {
	var out []string
	out = append(out, ui.H2.Render("Quests"))

	lines := m.boardLines()
	if len(lines) == 0 {
		out = append(out, "(empty)")
		return strings.Join(out, "\n")
	}
	for i, bl := range lines {
		cursor := "  "
		if i == m.selected {
			cursor = "> "
		}
		var row string
		if bl.isQuest {
			fold := "▸ "
			if bl.expanded {
				fold = "▾ "
			}
			mark := ""
			if bl.done {
				mark = " " + ui.IconDone
			}
			row = fold + bl.title + mark
		} else {
			row = fmt.Sprintf("  %s %s %s", ui.Checkbox(bl.done), bl.title,
				ui.Muted.Render(fmt.Sprintf("+%d XP", bl.xp)))
		}
		if i == m.selected {
			row = ui.SelectedRow.Render(row)
		}
		out = append(out, cursor+row)
	}
	return strings.Join(out, "\n")
}

func (m boardModel) renderFooter() string {
	return "\n" + m.lastLog
}

func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) >= width {
		return string(r[:width])
	}
	return s + strings.Repeat(" ", width-len(r))
}
