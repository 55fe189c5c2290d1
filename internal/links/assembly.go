package links

import (
	"fmt"
	"sort"

	"github.com/roach88/svlinks/internal/sv"
)

// BuildAssemblyLinks links breakends that share an assembly and face each
// other. chrBreakends groups breakends by chromosome; assemblies are only
// matched within a group. Chromosomes and assembly IDs are visited in sorted
// order so link IDs are stable between runs.
func BuildAssemblyLinks(chrBreakends map[string][]*sv.Breakend) *LinkStore {
	store := NewLinkStore()

	chromosomes := make([]string, 0, len(chrBreakends))
	for chr := range chrBreakends {
		chromosomes = append(chromosomes, chr)
	}
	sort.Strings(chromosomes)

	for _, chr := range chromosomes {
		addAssemblyLinks(store, groupByAssembly(chrBreakends[chr]))
	}

	return store
}

// BuildAssemblyLinksFromVariants indexes the variants in a fresh cache and
// builds their assembly links.
func BuildAssemblyLinksFromVariants(variants []*sv.Variant) *LinkStore {
	cache := sv.NewCache()
	for _, v := range variants {
		cache.AddVariant(v)
	}
	cache.BuildBreakendMap()

	return BuildAssemblyLinks(cache.BreakendMap())
}

// groupByAssembly maps each assembly ID to the breakends citing it.
// A breakend citing the same assembly more than once is listed once.
func groupByAssembly(breakends []*sv.Breakend) map[string][]*sv.Breakend {
	groups := make(map[string][]*sv.Breakend)

	for _, b := range breakends {
		for _, assembly := range b.Assemblies() {
			group := groups[assembly]
			if n := len(group); n > 0 && group[n-1] == b {
				continue
			}
			groups[assembly] = append(group, b)
		}
	}

	return groups
}

func addAssemblyLinks(store *LinkStore, groups map[string][]*sv.Breakend) {
	assemblies := make([]string, 0, len(groups))
	for assembly, breakends := range groups {
		if len(breakends) >= 2 {
			assemblies = append(assemblies, assembly)
		}
	}
	sort.Strings(assemblies)

	for _, assembly := range assemblies {
		breakends := groups[assembly]

		linkCounter := 0
		for i := 0; i < len(breakends)-1; i++ {
			for j := i + 1; j < len(breakends); j++ {
				if !facesForAssembly(breakends[i], breakends[j]) {
					continue
				}

				linkID := fmt.Sprintf("%s-%d", assembly, linkCounter)
				linkCounter++

				store.AddLinks(linkID, breakends[i], breakends[j])
			}
		}
	}
}

// facesForAssembly reports whether two breakends citing the same assembly
// can be joined by it: different variants on the same chromosome, opposite
// orientations, and not pointing away from each other.
func facesForAssembly(first, second *sv.Breakend) bool {
	if first.Variant() == second.Variant() {
		return false
	}
	if first.Chromosome != second.Chromosome {
		return false
	}
	if first.Orientation == second.Orientation {
		return false
	}
	if first.Position < second.Position && first.PosOrient() {
		return false
	}
	if second.Position < first.Position && second.PosOrient() {
		return false
	}
	return true
}
