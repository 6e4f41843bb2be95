package services

import "sort"

// Radius for same-area grouping.
const clusterRadiusKm = 2.0

// clusterVisitOrder produces the ordering bias the scheduler consumes:
// POIs grouped by proximity so same-area visits land together before the
// plan crosses to a new area.
//
// Single-pass seed-and-sweep: each unassigned POI in input order seeds a
// cluster and pulls in every still-unassigned POI within the radius of
// that seed (one hop only, not transitive). Each cluster is then sorted
// by (best_time, name) and the clusters are concatenated.
func clusterVisitOrder(pois []schedulePOI) []schedulePOI {
	if len(pois) == 0 {
		return nil
	}

	used := make([]bool, len(pois))
	out := make([]schedulePOI, 0, len(pois))

	for i := range pois {
		if used[i] {
			continue
		}
		cluster := []schedulePOI{pois[i]}
		used[i] = true
		for j := range pois {
			if used[j] {
				continue
			}
			if haversineKm(pois[i].Lat, pois[i].Lon, pois[j].Lat, pois[j].Lon) <= clusterRadiusKm {
				cluster = append(cluster, pois[j])
				used[j] = true
			}
		}
		sort.Slice(cluster, func(a, b int) bool {
			if cluster[a].BestTime != cluster[b].BestTime {
				return cluster[a].BestTime < cluster[b].BestTime
			}
			return cluster[a].Name < cluster[b].Name
		})
		out = append(out, cluster...)
	}

	return out
}
