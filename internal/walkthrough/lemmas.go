package walkthrough

func closedAccumulationSteps() []Step {
	return []Step{
		{
			Title:       "Setup",
			Description: "A is a closed set (shown in blue). We have a point 'a' that is an accumulation point of A.",
			Flags:       ShowSet | ShowPoint,
		},
		{
			Title:       "Assume a ∉ A",
			Description: "For contradiction, suppose a is NOT in A. This means a must be in the complement Aᶜ (the white region).",
			Flags:       ShowSet | ShowPoint | ShowComplement,
		},
		{
			Title:       "Aᶜ is Open",
			Description: "Since A is closed, its complement Aᶜ is open by definition. This is crucial!",
			Flags:       ShowSet | ShowPoint | ShowComplement,
		},
		{
			Title:       "Open Set Property",
			Description: "Since Aᶜ is open and a ∈ Aᶜ, there exists ε > 0 such that the entire interval (a-ε, a+ε) is contained in Aᶜ.",
			Flags:       ShowSet | ShowPoint | ShowComplement | ShowNeighborhood,
		},
		{
			Title:       "The Contradiction!",
			Description: "But wait! If (a-ε, a+ε) ⊆ Aᶜ, then (a-ε, a+ε) ∩ A = ∅. This means NO points of A are near 'a'. But 'a' is an accumulation point — every neighborhood must contain points of A!",
			Flags:       ShowSet | ShowPoint | ShowComplement | ShowNeighborhood | HighlightContradiction,
		},
		{
			Title:       "Conclusion",
			Description: "Our assumption that a ∉ A led to a contradiction. Therefore, a ∈ A. Closed sets contain all their accumulation points. ∎",
			Flags:       ShowSet | ShowPoint | PointInSet,
		},
	}
}

func closedAccumulationRevSteps() []Step {
	return []Step{
		{
			Title:       "Setup",
			Description: "We have a set A that contains all its accumulation points. We want to prove A is closed, which means proving Aᶜ (the complement) is open.",
			Flags:       ShowSet,
		},
		{
			Title:       "Goal: Show Aᶜ is Open",
			Description: "To prove A is closed, we must show Aᶜ is open. By definition, Aᶜ is open if for every point a ∈ Aᶜ, there exists ε > 0 such that (a-ε, a+ε) ⊆ Aᶜ.",
			Flags:       ShowSet | ShowComplement,
		},
		{
			Title:       "Pick Arbitrary a ∈ Aᶜ",
			Description: "Let a be any point in Aᶜ. Since a ∉ A, and A contains all its accumulation points, we know a is NOT an accumulation point of A.",
			Flags:       ShowSet | ShowComplement | ShowPoint,
		},
		{
			Title:       "What Does 'Not an Accumulation Point' Mean?",
			Description: "Since a is NOT an accumulation point of A, the negation of the definition tells us: there EXISTS some ε > 0 such that ((a-ε, a+ε) \\ {a}) ∩ A = ∅. That is, some neighborhood of a (excluding a itself) contains no points of A.",
			Flags:       ShowSet | ShowComplement | ShowPoint | ShowAccumulationTest,
		},
		{
			Title:       "The Key Neighborhood",
			Description: "Since a ∉ A already, and ((a-ε, a+ε) \\ {a}) ∩ A = ∅, the entire interval (a-ε, a+ε) contains no points of A. This means (a-ε, a+ε) ⊆ Aᶜ!",
			Flags:       ShowSet | ShowComplement | ShowPoint | ShowNeighborhood,
		},
		{
			Title:       "Conclusion",
			Description: "We showed that for arbitrary a ∈ Aᶜ, there exists ε > 0 with (a-ε, a+ε) ⊆ Aᶜ. This is exactly the definition of Aᶜ being open. Therefore A is closed. ∎",
			Flags:       ShowSet | ShowComplement | ShowPoint | ShowNeighborhood | HighlightSuccess,
		},
	}
}
