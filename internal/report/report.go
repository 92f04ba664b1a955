// Package report renders possessions, entities, fights and loot as plain-text
// tables for the terminal.
package report

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/osse101/skirmish/internal/combat"
	"github.com/osse101/skirmish/internal/entity"
	"github.com/osse101/skirmish/internal/possession"
)

// Formatter renders reports with locale-aware number grouping.
type Formatter struct {
	printer *message.Printer
}

// NewFormatter creates a formatter for the given language.
func NewFormatter(tag language.Tag) *Formatter {
	return &Formatter{printer: message.NewPrinter(tag)}
}

// DefaultLanguage is used by the package-level helpers.
var DefaultLanguage = language.English

var english = NewFormatter(DefaultLanguage)

// Possession renders p, and the contents of backpacks, with the English formatter.
func Possession(p possession.Possession) string { return english.Possession(p) }

// Entity renders e and everything it carries with the English formatter.
func Entity(e *entity.Entity) string { return english.Entity(e) }

// Possession renders p as a table. Backpack contents follow, indented.
func (f *Formatter) Possession(p possession.Possession) string {
	t := newTable(ColPossession, ColDetail, ColWeight, ColValue).alignRight(2, 3)
	if p != nil {
		f.possessionRows(t, "", p, 0, nil)
	}
	return t.String()
}

// Entity renders the entity summary line followed by one row per anchor.
func (f *Formatter) Entity(e *entity.Entity) string {
	var sb strings.Builder
	sb.WriteString(e.String())
	sb.WriteByte('\n')

	t := newTable(ColAnchor, ColPossession, ColDetail, ColWeight, ColValue).alignRight(3, 4)
	for _, a := range e.Anchors() {
		p, err := e.PossessionAt(a)
		if err != nil || p == nil {
			t.add(string(a), emptyCell)
			continue
		}
		f.possessionRows(t, string(a), p, 0, []string{})
	}
	t.add(totalRow, "", "", possession.Kilograms(e.TotalWeight()), f.number(e.TotalValue()))
	t.render(&sb)
	return sb.String()
}

// possessionRows adds p and its contents. With lead non-nil every row gets a
// leading cell, filled with anchor on the first row only.
func (f *Formatter) possessionRows(t *table, anchor string, p possession.Possession, depth int, lead []string) {
	cells := []string{
		strings.Repeat(indentStep, depth) + label(p),
		f.detail(p),
		possession.Kilograms(p.TotalWeight()),
		f.number(p.TotalValue()),
	}
	if lead != nil {
		cells = append([]string{anchor}, cells...)
	}
	t.add(cells...)

	b, ok := p.(*possession.Backpack)
	if !ok || depth >= possession.MaxHolderDepth {
		return
	}
	for _, inner := range b.Contents() {
		f.possessionRows(t, "", inner, depth+1, lead)
	}
}

func label(p possession.Possession) string {
	return fmt.Sprintf(fmtLabel, p.Kind().Label(), p.ID())
}

func (f *Formatter) detail(p possession.Possession) string {
	if p.IsBroken() {
		return detailBroken
	}
	switch v := p.(type) {
	case *possession.Weapon:
		return fmt.Sprintf(fmtWeaponDetail, v.Damage(), v.MaxDurability())
	case *possession.Armor:
		d := fmt.Sprintf(fmtArmorDetail, v.Protection(), v.MaxDurability())
		if v.TypeName() != "" {
			d += " " + v.TypeName()
		}
		return d
	case *possession.Backpack:
		return fmt.Sprintf(fmtBackpackDetail, v.Len(),
			possession.Kilograms(v.ContentWeight()), possession.Kilograms(v.Capacity()))
	case *possession.Purse:
		return f.printer.Sprintf(fmtPurseDetail, v.Units(), v.Capacity())
	default:
		return ""
	}
}

func (f *Formatter) number(n int) string {
	return f.printer.Sprintf("%d", n)
}

// Fight renders the outcome line and one row per exchange.
func (f *Formatter) Fight(res *combat.FightResult) string {
	var sb strings.Builder
	if res.Decided() {
		sb.WriteString(fmt.Sprintf(fmtFightDecided, res.Winner.Name(), res.Loser.Name(), res.Rounds))
	} else {
		sb.WriteString(fmt.Sprintf(fmtFightUndecided, res.Rounds))
	}
	sb.WriteByte('\n')

	t := newTable(ColRound, ColAttacker, ColRoll, ColProtection, ColDamage, ColOutcome).alignRight(0, 2, 3, 4)
	for i, x := range res.Exchanges {
		t.add(
			f.number(i/2+1),
			x.Attacker.Name(),
			f.number(x.Roll),
			f.number(x.Protection),
			f.number(x.Damage),
			x.Outcome(),
		)
	}
	t.render(&sb)
	return sb.String()
}

// Loot renders one row per possession found on the loser.
func (f *Formatter) Loot(r *combat.LootReport) string {
	var sb strings.Builder
	if len(r.Entries) == 0 {
		sb.WriteString(fmt.Sprintf(fmtLootNothing, r.Winner.Name(), r.Loser.Name()))
		sb.WriteByte('\n')
		return sb.String()
	}
	sb.WriteString(fmt.Sprintf(fmtLootHeader, r.Winner.Name(), r.Loser.Name()))
	sb.WriteByte('\n')

	t := newTable(ColFrom, ColTo, ColPossession, ColOutcome)
	for _, e := range r.Entries {
		to := string(e.To)
		if to == "" {
			to = emptyCell
		}
		outcome := e.Outcome
		if e.Outcome == combat.LootMerged {
			outcome = f.printer.Sprintf("%s (%d ducats)", e.Outcome, e.Units)
		}
		t.add(string(e.From), to, label(e.Possession), outcome)
	}
	t.render(&sb)
	return sb.String()
}
