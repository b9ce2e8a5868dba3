// This file implements the bulk snapshot operations: whole-store export
// grouped by item type, and strictly additive import.
package sqlite

import (
	"fmt"

	"github.com/ShalunBdk/ZavodHelper/pkg/types"
)

// Export produces a snapshot of all items grouped by type, ordered by id
// ascending within each group. Read-only and unpaginated; meant for
// administrative backup, not interactive use.
func (s *Store) Export() (*types.Snapshot, error) {
	incidents, err := s.exportByType(types.ItemTypeIncident)
	if err != nil {
		return nil, err
	}
	instructions, err := s.exportByType(types.ItemTypeInstruction)
	if err != nil {
		return nil, err
	}
	return &types.Snapshot{Incidents: incidents, Instructions: instructions}, nil
}

func (s *Store) exportByType(t types.ItemType) ([]types.SnapshotItem, error) {
	items, err := s.ItemsByType(t, types.ItemFilter{})
	if err != nil {
		return nil, fmt.Errorf("exporting %s items: %w", t, err)
	}

	out := make([]types.SnapshotItem, 0, len(items))
	for _, item := range items {
		snap := types.SnapshotItem{
			ID:         item.ID,
			Title:      item.Title,
			CategoryID: item.CategoryID,
			Pages:      make([]types.SnapshotPage, 0, len(item.Pages)),
		}
		for _, loc := range item.Locations {
			snap.LocationIDs = append(snap.LocationIDs, loc.ID)
		}
		for _, page := range item.Pages {
			sp := types.SnapshotPage{
				Title:   page.Title,
				Time:    page.Time,
				Image:   page.Image,
				Actions: make([]string, 0, len(page.Actions)),
			}
			for _, action := range page.Actions {
				sp.Actions = append(sp.Actions, action.Text)
			}
			snap.Pages = append(snap.Pages, sp)
		}
		out = append(out, snap)
	}
	return out, nil
}

// Import creates a new item for every snapshot entry. Snapshot ids are
// ignored; import is strictly additive, never an upsert. Each item commits
// independently, so a failure partway leaves prior items in place and the
// returned counts reflect what was committed.
func (s *Store) Import(snap types.Snapshot) (types.ImportCounts, error) {
	var counts types.ImportCounts

	for i, entry := range snap.Incidents {
		if _, err := s.CreateItem(snapshotCreate(entry, types.ItemTypeIncident)); err != nil {
			return counts, fmt.Errorf("importing incident %d: %w", i, err)
		}
		counts.Incidents++
	}
	for i, entry := range snap.Instructions {
		if _, err := s.CreateItem(snapshotCreate(entry, types.ItemTypeInstruction)); err != nil {
			return counts, fmt.Errorf("importing instruction %d: %w", i, err)
		}
		counts.Instructions++
	}
	return counts, nil
}

// snapshotCreate synthesizes a creation payload from a snapshot entry,
// defaulting missing page fields to the fixed placeholders.
func snapshotCreate(entry types.SnapshotItem, t types.ItemType) types.ItemCreate {
	pages := make([]types.PageInput, 0, len(entry.Pages))
	for _, p := range entry.Pages {
		title := p.Title
		if title == "" {
			title = types.DefaultPageTitle
		}
		pageTime := p.Time
		if pageTime == "" {
			pageTime = types.DefaultPageTime
		}
		pages = append(pages, types.PageInput{
			Title:   title,
			Time:    pageTime,
			Image:   p.Image,
			Actions: p.Actions,
		})
	}
	return types.ItemCreate{
		Title:       entry.Title,
		ItemType:    t,
		CategoryID:  entry.CategoryID,
		LocationIDs: entry.LocationIDs,
		Pages:       pages,
	}
}
