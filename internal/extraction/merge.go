package extraction

import (
	"math"

	"github.com/jonathan/resume-tailor/internal/types"
)

// Merger combines the local and remote outcomes into one JobRequirements.
type Merger struct{}

// Merge applies the tier policy:
//   - a degraded remote outcome yields the local result unchanged;
//   - otherwise remote classification wins, local skills the remote pass
//     omitted are added back, and a skill either tier calls required is
//     required;
//   - years and education come from remote when present, else local;
//   - confidence blends signal coverage with how much the tiers agree.
func (Merger) Merge(local, remote Outcome) *types.JobRequirements {
	if remote.Degraded() {
		return local.Requirements()
	}

	localAll := union(local.RequiredSkills, local.PreferredSkills)
	remoteAll := union(remote.RequiredSkills, remote.PreferredSkills)

	// Local hits the remote pass never mentioned keep their local class.
	missed := subtract(localAll, remoteAll)
	missedRequired := subtract(local.RequiredSkills, subtract(local.RequiredSkills, missed))
	missedPreferred := subtract(missed, missedRequired)

	required := union(remote.RequiredSkills, missedRequired, conflicts(local.RequiredSkills, remote.PreferredSkills))
	preferred := subtract(union(remote.PreferredSkills, missedPreferred), required)

	merged := Outcome{
		Source:           types.ExtractionHybrid,
		RequiredSkills:   required,
		PreferredSkills:  preferred,
		YearsExperience:  remote.YearsExperience,
		EducationLevel:   remote.EducationLevel,
		Responsibilities: remote.Responsibilities,
	}
	if merged.YearsExperience == nil {
		merged.YearsExperience = local.YearsExperience
	}
	if merged.EducationLevel == nil {
		merged.EducationLevel = local.EducationLevel
	}
	if len(merged.Responsibilities) == 0 {
		merged.Responsibilities = local.Responsibilities
	}

	req := merged.Requirements()
	req.ConfidenceScore = agreementConfidence(merged.Coverage(), localAll, remoteAll)
	return req
}

// conflicts returns skills local calls required and remote calls preferred.
// Unresolved conflicts default to required.
func conflicts(localRequired, remotePreferred []string) []string {
	return subtract(localRequired, subtract(localRequired, remotePreferred))
}

// agreementConfidence weighs signal coverage and skill-set agreement equally.
func agreementConfidence(coverage float64, localSkills, remoteSkills []string) float64 {
	c := 0.5*coverage + 0.5*jaccard(localSkills, remoteSkills)
	return math.Max(0, math.Min(1, c))
}
