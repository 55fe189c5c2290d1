package links

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/roach88/svlinks/internal/config"
	"github.com/roach88/svlinks/internal/sv"
)

// BreakendIndex is the view of the variant store the finder reads.
// Implemented by sv.Cache.
type BreakendIndex interface {
	VariantCount() int
	SelectOthersNearby(b *sv.Breakend, additionalDistance, seekDistance int) []*sv.Breakend
}

// SearchResult is the outcome of one transitive search.
type SearchResult struct {
	Outcome    Outcome
	Iterations int

	// Links is the resolved chain; empty unless Outcome is OutcomeResolved.
	Links []Link
}

// TransitiveLinkFinder searches for chains joining a breakend to its mate
// through assembled and transitive links.
//
// Thread-safety: searches keep their state locally, so concurrent calls are
// safe once the index and the assembly LinkStore are no longer modified.
type TransitiveLinkFinder struct {
	index         BreakendIndex
	assemblyLinks *LinkStore
	cfg           config.Links
	logger        *slog.Logger
}

// FinderOption configures a TransitiveLinkFinder.
type FinderOption func(*TransitiveLinkFinder)

// WithConfig sets the search budgets and windows.
// Default: config.DefaultLinks().
func WithConfig(cfg config.Links) FinderOption {
	return func(f *TransitiveLinkFinder) {
		f.cfg = cfg
	}
}

// WithLogger sets the logger used for iteration-limit warnings.
// Default: slog.Default().
func WithLogger(logger *slog.Logger) FinderOption {
	return func(f *TransitiveLinkFinder) {
		f.logger = logger
	}
}

// NewTransitiveLinkFinder creates a finder over index using assemblyLinks
// as the assembly evidence.
func NewTransitiveLinkFinder(index BreakendIndex, assemblyLinks *LinkStore, opts ...FinderOption) *TransitiveLinkFinder {
	f := &TransitiveLinkFinder{
		index:         index,
		assemblyLinks: assemblyLinks,
		cfg:           config.DefaultLinks(),
		logger:        slog.Default(),
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

// FindTransitiveLinks returns the chain joining b to its mate, or nil when
// there is no single trustworthy chain.
func (f *TransitiveLinkFinder) FindTransitiveLinks(b *sv.Breakend) []Link {
	return f.Search(b).Links
}

// Search runs a transitive search from b and reports how it ended.
func (f *TransitiveLinkFinder) Search(b *sv.Breakend) SearchResult {
	if f.index.VariantCount() > f.cfg.MaxVariants {
		return SearchResult{Outcome: OutcomeTooManyVariants}
	}

	if b.IsSgl() {
		return SearchResult{Outcome: OutcomeSingleBreakend}
	}

	target := b.Other()

	alternatives := f.selectAlternatives(b)
	if len(alternatives) == 0 {
		return SearchResult{Outcome: OutcomeNoAlternatives}
	}
	if len(alternatives) > f.cfg.MaxAlternatives {
		return SearchResult{Outcome: OutcomeTooManyAlternatives}
	}

	prefix := fmt.Sprintf("%s_%s_", TransLinkPrefix, b.VcfID)

	assemblyPending := newNodeQueue(len(alternatives))
	transPending := newNodeQueue(4)
	var matched []*TransitiveLink

	for _, alternative := range alternatives {
		assemblyPending.Push(NewTransitiveLink(
			prefix, alternative, alternative.Other(),
			f.cfg.MaxAssemblyJumps, f.cfg.MaxTransitiveJumps,
			[]Link{PairLink(alternative)},
		))
	}

	quota := newIterationQuota(f.cfg.MaxIterations)

	for {
		if err := quota.Check(b.VcfID); err != nil {
			f.logger.Warn("abandoning transitive search",
				"breakend", b.String(),
				"target", target.String(),
				"iterations", quota.Current(),
				"error", err,
			)
			return SearchResult{Outcome: OutcomeIterationLimit, Iterations: quota.Current()}
		}

		// More than one transitive path and no assembled one: ambiguous.
		if transPending.Len() > 1 {
			return SearchResult{Outcome: OutcomeAmbiguous, Iterations: quota.Current()}
		}

		if assemblyPending.Empty() && transPending.Empty() {
			switch len(matched) {
			case 0:
				return SearchResult{Outcome: OutcomeExhausted, Iterations: quota.Current()}
			case 1:
				return SearchResult{Outcome: OutcomeResolved, Iterations: quota.Current(), Links: matched[0].Links()}
			default:
				return SearchResult{Outcome: OutcomeAmbiguous, Iterations: quota.Current()}
			}
		}

		if node, ok := assemblyPending.Pop(); ok {
			// The first fully assembled chain, breadth-wise, wins outright.
			if node.MatchesTarget(target) {
				return SearchResult{Outcome: OutcomeResolved, Iterations: quota.Current(), Links: node.Links()}
			}

			assemblyPending.Push(f.assemblyNodes(node)...)
			transPending.Push(f.transitiveNodes(node)...)
			continue
		}

		node, _ := transPending.Pop()
		// A matched node keeps expanding; a second match through it
		// makes the search ambiguous.
		if node.MatchesTarget(target) {
			matched = append(matched, node)
		}

		transPending.Push(f.assemblyNodes(node)...)
		transPending.Push(f.transitiveNodes(node)...)
	}
}

// selectAlternatives returns the precise, paired breakends near b that could
// stand in for it, by descending quality. Equal qualities keep position order.
func (f *TransitiveLinkFinder) selectAlternatives(b *sv.Breakend) []*sv.Breakend {
	nearby := f.index.SelectOthersNearby(b, f.cfg.AlternativeAdditionalDistance, f.cfg.AlternativeSeekDistance)

	var alternatives []*sv.Breakend
	for _, other := range nearby {
		if other.Imprecise() || other.IsSgl() {
			continue
		}

		if !IsAlternative(b, other) {
			continue
		}

		index := 0
		for index < len(alternatives) && other.Qual <= alternatives[index].Qual {
			index++
		}
		alternatives = slices.Insert(alternatives, index, other)
	}

	return alternatives
}

// assemblyNodes extends node along each assembly link of its frontier that
// the chain has not used yet, best far-end quality first.
func (f *TransitiveLinkFinder) assemblyNodes(node *TransitiveLink) []*TransitiveLink {
	if node.RemainingAssemblyJumps() == 0 {
		return nil
	}

	frontier := node.End()

	var candidates []Link
	for _, link := range f.assemblyLinks.Links(frontier) {
		if node.hasLink(link) {
			continue
		}

		qual := link.OtherBreakend(frontier).Qual

		index := 0
		for index < len(candidates) && qual <= candidates[index].OtherBreakend(frontier).Qual {
			index++
		}
		candidates = slices.Insert(candidates, index, link)
	}

	var children []*TransitiveLink
	for _, link := range candidates {
		paired := link.OtherBreakend(frontier)
		if paired.IsSgl() || paired.Imprecise() {
			continue
		}

		children = append(children, NewTransitiveLink(
			node.Prefix(), paired, paired.Other(),
			node.RemainingAssemblyJumps()-1, node.RemainingTransitiveJumps(),
			node.extend(link, PairLink(paired)),
		))
	}

	return children
}

// transitiveNodes extends node by a synthesized hop to each nearby facing
// breakend without assembly support. Frontiers with assembly links of their
// own are not hopped from.
func (f *TransitiveLinkFinder) transitiveNodes(node *TransitiveLink) []*TransitiveLink {
	frontier := node.End()

	if len(f.assemblyLinks.Links(frontier)) > 0 {
		return nil
	}
	if node.RemainingTransitiveJumps() == 0 {
		return nil
	}

	nearby := f.index.SelectOthersNearby(frontier, f.cfg.TransitiveAdditionalDistance, f.cfg.TransitiveSeekDistance)

	var children []*TransitiveLink
	for _, other := range nearby {
		if other.Imprecise() || other.IsSgl() {
			continue
		}
		if other.Orientation == frontier.Orientation {
			continue
		}
		if !AreCandidateLink(frontier, other, f.cfg.MinTransitiveDistance) {
			continue
		}
		if f.assemblyLinks.Contains(other) {
			continue
		}

		linkID := fmt.Sprintf("%s%d", node.Prefix(), f.cfg.MaxTransitiveJumps-node.RemainingTransitiveJumps())

		children = append(children, NewTransitiveLink(
			node.Prefix(), other, other.Other(),
			node.RemainingAssemblyJumps(), node.RemainingTransitiveJumps()-1,
			node.extend(NewLink(linkID, frontier, other), PairLink(other)),
		))
	}

	return children
}
