package patch

import "github.com/Nexusdeveloper902/Stellar-Mercenary-Freelancers-Haven/internal/asset"

// PropagateEndMarkers carries the canonical clip's end-of-clip markers
// over to the substitute.
//
// Only markers sitting at the canonical clip's own duration count; they
// are re-anchored to the substitute's duration, because clip lengths
// differ across variants and the marker must still mean "this motion just
// finished". A marker the substitute already carries (authored, or
// recorded by an earlier call) is not added again, which makes the whole
// operation idempotent.
func PropagateEndMarkers(p *Patch, canonical, substitute *asset.Clip) {
	for _, m := range canonical.EndMarkers() {
		if substitute.HasMarkerNear(m.Name, substitute.Duration) {
			continue
		}
		p.recordMarker(substitute.Path, asset.Marker{
			Name: m.Name,
			Time: substitute.Duration,
		})
	}
}
