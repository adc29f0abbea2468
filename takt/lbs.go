package takt

import (
	"fmt"
	"strings"

	"backend/models"
)

// Location node types used in the LBS tree.
const (
	NodeSite     = "site"
	NodeBuilding = "building"
	NodeFloor    = "floor"
	NodeZone     = "zone"
	NodeRoom     = "room"
	NodeArea     = "area"
)

// Construction phases attached to zone nodes.
const (
	PhaseSubstructure = "substructure"
	PhaseStructural   = "structural"
	PhaseFinishing    = "finishing"
	PhaseNone         = "none"
)

// LocationTemplateNode is one node of the Location Breakdown Structure
// template tree. The tree is built once per generation call, never mutated
// afterwards, and consumed by a single flatten pass.
type LocationTemplateNode struct {
	Name        string                 `json:"name"`
	Type        string                 `json:"type"`
	Phase       string                 `json:"phase,omitempty"`
	Repeat      int                    `json:"repeat,omitempty"`
	RepeatLabel string                 `json:"repeat_label,omitempty"`
	AreaSqm     float64                `json:"area_sqm,omitempty"`
	Children    []LocationTemplateNode `json:"children,omitempty"`
}

// GenerateLocationBreakdown expands a building configuration into an LBS
// template forest rooted at a site node.
//
// The skeleton is site -> building -> floors, where basements keep their own
// counter starting at the foundation side. Every floor carries a shell & core
// zone group and a fit-out zone group; the building itself carries a single
// substructure sector group independent of the vertical subdivision. Linear
// infrastructure works carry none of these groups and stay at the
// site/building skeleton. A building type with no registered template yields
// an empty forest; the caller shows that as "no template available", not as
// a fault.
func GenerateLocationBreakdown(cfg models.BuildingConfiguration) []LocationTemplateNode {
	tpl, ok := buildingTemplates[cfg.BuildingType]
	if !ok {
		return nil
	}
	cfg = NormalizeConfiguration(cfg)

	building := LocationTemplateNode{
		Name: tpl.BuildingName,
		Type: NodeBuilding,
	}

	// Infrastructure projects subdivide into linear sections; the
	// substructure/shell/fit-out zone math does not apply to them.
	if !tpl.Linear {
		building.Children = append(building.Children, LocationTemplateNode{
			Name:        "Substructure Sector",
			Type:        NodeZone,
			Phase:       PhaseSubstructure,
			Repeat:      cfg.SubstructureZonesCount,
			RepeatLabel: "Substructure Sector {n}",
		})

		zoneArea := 0.0
		if cfg.TypicalFloorArea > 0 && cfg.ZonesPerFloor > 0 {
			zoneArea = cfg.TypicalFloorArea / float64(cfg.ZonesPerFloor)
		}

		floorZones := []LocationTemplateNode{
			{
				Name:        "Shell & Core Zone",
				Type:        NodeZone,
				Phase:       PhaseStructural,
				Repeat:      cfg.StructuralZonesPerFloor,
				RepeatLabel: "Shell & Core Zone {n}",
			},
			{
				Name:        "Fit-Out Zone",
				Type:        NodeZone,
				Phase:       PhaseFinishing,
				Repeat:      cfg.ZonesPerFloor,
				RepeatLabel: "Fit-Out Zone {n}",
				AreaSqm:     zoneArea,
			},
		}

		if cfg.BasementCount > 0 {
			building.Children = append(building.Children, LocationTemplateNode{
				Name:        "Basement",
				Type:        NodeFloor,
				Repeat:      cfg.BasementCount,
				RepeatLabel: "Basement {n}",
				AreaSqm:     cfg.TypicalFloorArea,
				Children:    floorZones,
			})
		}
		if cfg.FloorCount > 0 {
			building.Children = append(building.Children, LocationTemplateNode{
				Name:        "Floor",
				Type:        NodeFloor,
				Repeat:      cfg.FloorCount,
				RepeatLabel: "Floor {n}",
				AreaSqm:     cfg.TypicalFloorArea,
				Children:    floorZones,
			})
		}
	}

	site := LocationTemplateNode{
		Name:     tpl.SiteName,
		Type:     NodeSite,
		Children: []LocationTemplateNode{building},
	}
	return []LocationTemplateNode{site}
}

// FlattenLocations walks a template forest in pre-order and expands every
// repeat-annotated node into its numbered instances. Rows come out with a
// strictly increasing sort order, and a row's parent is always emitted before
// the row itself; the bulk location endpoint depends on that ordering to
// resolve parent names in submission order.
func FlattenLocations(nodes []LocationTemplateNode) []models.FlatLocationRow {
	var rows []models.FlatLocationRow
	order := 0
	for _, node := range nodes {
		rows = flattenNode(node, "", rows, &order)
	}
	return rows
}

func flattenNode(node LocationTemplateNode, parentName string, rows []models.FlatLocationRow, order *int) []models.FlatLocationRow {
	repeat := node.Repeat
	if repeat < 1 {
		repeat = 1
	}

	for i := 1; i <= repeat; i++ {
		name := node.Name
		if repeat > 1 {
			name = instanceName(node, i)
		}

		*order++
		rows = append(rows, models.FlatLocationRow{
			Name:         name,
			LocationType: node.Type,
			ParentName:   parentName,
			AreaSqm:      node.AreaSqm,
			Phase:        node.Phase,
			SortOrder:    *order,
		})

		for _, child := range node.Children {
			rows = flattenNode(child, name, rows, order)
		}
	}
	return rows
}

func instanceName(node LocationTemplateNode, index int) string {
	if node.RepeatLabel != "" {
		return strings.ReplaceAll(node.RepeatLabel, "{n}", fmt.Sprintf("%d", index))
	}
	return fmt.Sprintf("%s %d", node.Name, index)
}

// CountTemplateLocations reports how many rows a flatten pass over the forest
// will emit, split by phase. Total counts every row; Zones only zone rows.
func CountTemplateLocations(nodes []LocationTemplateNode) models.LocationCounts {
	var counts models.LocationCounts
	for _, node := range nodes {
		countNode(node, &counts)
	}
	return counts
}

func countNode(node LocationTemplateNode, counts *models.LocationCounts) {
	repeat := node.Repeat
	if repeat < 1 {
		repeat = 1
	}

	for i := 0; i < repeat; i++ {
		counts.Total++
		if node.Type == NodeZone {
			counts.Zones++
			switch node.Phase {
			case PhaseSubstructure:
				counts.Substructure++
			case PhaseStructural:
				counts.Structural++
			case PhaseFinishing:
				counts.Finishing++
			}
		}
		for _, child := range node.Children {
			countNode(child, counts)
		}
	}
}
