package grouping

import (
	"testing"
)

func TestGroupByLongestCommonPrefix_Basic(t *testing.T) {
	nodeIDs := []string{"access-001", "access-002", "access-003"}
	minGroupSize := 3

	groups := GroupByLongestCommonPrefix(nodeIDs, minGroupSize)

	t.Logf("Input: %v", nodeIDs)
	t.Logf("MinGroupSize: %d", minGroupSize)
	t.Logf("Groups count: %d", len(groups))

	for i, group := range groups {
		t.Logf("Group %d: prefix=%s, count=%d, nodes=%v", i, group.Prefix, group.Count, group.NodeIDs)
	}

	if len(groups) == 0 {
		t.Error("Expected at least one group, but got 0")
	}

	if len(groups) > 0 {
		group := groups[0]
		if group.Prefix != "access-" {
			t.Errorf("Expected prefix 'access-', got '%s'", group.Prefix)
		}
		if group.Count != 3 {
			t.Errorf("Expected count 3, got %d", group.Count)
		}
	}
}

func TestGroupByLongestCommonPrefix_NotEnoughNodes(t *testing.T) {
	nodeIDs := []string{"access-001", "access-002"}
	minGroupSize := 3

	groups := GroupByLongestCommonPrefix(nodeIDs, minGroupSize)

	if len(groups) != 0 {
		t.Errorf("Expected 0 groups when not enough nodes, got %d", len(groups))
	}
}

func TestGroupByLongestCommonPrefix_ExactMinimum(t *testing.T) {
	nodeIDs := []string{"dist-100", "dist-101", "dist-102"}
	minGroupSize := 3

	groups := GroupByLongestCommonPrefix(nodeIDs, minGroupSize)

	if len(groups) == 0 {
		t.Error("Expected at least one group when exactly meeting minimum, but got 0")
	}
}

func TestLongestCommonPrefix(t *testing.T) {
	tests := []struct {
		str1     string
		str2     string
		expected string
	}{
		{"access-001", "access-002", "access-00"},
		{"dist-100", "dist-101", "dist-10"},
		{"core-001", "core-002", "core-00"},
		{"different", "other", ""},
		{"same", "same", "same"},
	}

	for _, test := range tests {
		result := longestCommonPrefix(test.str1, test.str2)
		if result != test.expected {
			t.Errorf("longestCommonPrefix(%s, %s) = %s, expected %s",
				test.str1, test.str2, result, test.expected)
		}
	}
}

func TestFindGroupPrefix(t *testing.T) {
	tests := []struct {
		ids      []string
		expected string
	}{
		{[]string{"access-001", "access-002", "access-003"}, "access-"},
		{[]string{"dist-100", "dist-101", "dist-102"}, "dist-"},
		{[]string{"core-001", "core-002"}, "core-"},
		{[]string{"single"}, "single"},
		{[]string{}, ""},
	}

	for _, test := range tests {
		result := findGroupPrefix(test.ids)
		if result != test.expected {
			t.Errorf("findGroupPrefix(%v) = %s, expected %s",
				test.ids, result, test.expected)
		}
	}
}

func TestGroupByLevel(t *testing.T) {
	levels := map[string]int{
		"root": 0,
		"a":    1,
		"b":    1,
		"c":    2,
	}

	groups := GroupByLevel(levels)
	if len(groups) != 3 {
		t.Fatalf("expected 3 level groups, got %d", len(groups))
	}
	if groups[0].Prefix != "Level-0" || groups[0].Count != 1 {
		t.Errorf("unexpected level 0 group: %+v", groups[0])
	}
	if groups[1].Prefix != "Level-1" || groups[1].Count != 2 {
		t.Errorf("unexpected level 1 group: %+v", groups[1])
	}
	if groups[2].Prefix != "Level-2" || groups[2].Count != 1 {
		t.Errorf("unexpected level 2 group: %+v", groups[2])
	}
}

func TestGroupByBand(t *testing.T) {
	bands := map[string]string{
		"root": "ROOT",
		"a":    "H",
		"b":    "L",
		"c":    "H",
	}

	groups := GroupByBand(bands)
	if len(groups) != 3 {
		t.Fatalf("expected 3 band groups, got %d", len(groups))
	}
	// "H" has count 2, the other two have count 1 each; ties broken by prefix asc.
	if groups[0].Prefix != "H" || groups[0].Count != 2 {
		t.Errorf("unexpected top group: %+v", groups[0])
	}
}
