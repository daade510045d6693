package mapper

import (
	"fmt"
	"testing"

	"github.com/goccy/go-json"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// chainFlow builds n spaces linked linearly, with one entity and component
// hanging off each space.
func chainFlow(n int, lastIsResults bool) []byte {
	f := &testFlow{}
	for i := 0; i < n; i++ {
		var inputs map[string]any
		if lastIsResults && i == n-1 {
			inputs = map[string]any{"spaceType": "results"}
		}
		sid := fmt.Sprintf("s%d", i)
		f.node(sid, "space", inputs)
		f.node(sid+"-e", "entity", nil).edge(sid+"-e", sid)
		f.node(sid+"-c", "component", nil).edge(sid+"-c", sid+"-e")
		if i > 0 {
			f.edge(fmt.Sprintf("s%d", i-1), sid)
		}
	}
	data, _ := json.Marshal(f)
	return data
}

func TestMultiSceneInvariants(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50

	properties := gopter.NewProperties(parameters)
	conv := New()

	properties.Property("orders are gap-free and exactly one results scene ends the list", prop.ForAll(
		func(n int, lastIsResults bool) bool {
			res, err := conv.ProcessFlowData(chainFlow(n, lastIsResults))
			if err != nil || res.MultiScene == nil {
				return false
			}
			scenes := res.MultiScene.Scenes
			if res.MultiScene.TotalScenes != len(scenes) {
				return false
			}

			results := 0
			for i, s := range scenes {
				if s.Order != i {
					return false
				}
				if s.IsResultsScene {
					results++
				}
			}
			return results == 1 && scenes[len(scenes)-1].IsResultsScene && scenes[len(scenes)-1].IsLast
		},
		gen.IntRange(2, 12),
		gen.Bool(),
	))

	properties.Property("synthetic scene only when the chain does not end in results", prop.ForAll(
		func(n int, lastIsResults bool) bool {
			res, err := conv.ProcessFlowData(chainFlow(n, lastIsResults))
			if err != nil {
				return false
			}
			want := n + 1
			if lastIsResults {
				want = n
			}
			return res.MultiScene.TotalScenes == want
		},
		gen.IntRange(2, 12),
		gen.Bool(),
	))

	properties.Property("every component stays with its own scene", prop.ForAll(
		func(n int) bool {
			res, err := conv.ProcessFlowData(chainFlow(n, false))
			if err != nil {
				return false
			}
			seen := make(map[string]bool)
			for _, s := range res.MultiScene.Scenes[:n] {
				if len(s.SpaceData.Entities) != 1 {
					return false
				}
				comps := s.SpaceData.Entities[0].Components
				if len(comps) != 1 || comps[0].ID != s.SpaceID+"-c" || seen[comps[0].ID] {
					return false
				}
				seen[comps[0].ID] = true
			}
			return true
		},
		gen.IntRange(2, 12),
	))

	properties.TestingRun(t)
}
