package services

import (
	"fmt"
	"math"
	"sort"

	"github.com/MrMafora/Snap-Lotto-sub006/domain/entities"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

const (
	clusterCount        = 3
	clusterCommonTopN   = 5
	kmeansMaxIterations = 100
)

// buildClusters groups draws by the similarity of their number sets. Each
// complete draw is one-hot encoded over the number pool, projected onto its
// two leading principal components, and clustered with k-means. Incomplete
// draws are excluded from the encoding but reported, and a window with fewer
// complete draws than the threshold returns insufficient-data rather than a
// degenerate clustering.
func (s *analysisService) buildClusters(draws []*entities.LotteryDraw) (result entities.ClusterResult) {
	defer recoverAnalysis("clusters", &result.Status, &result.Error)

	complete := make([]*entities.LotteryDraw, 0, len(draws))
	incomplete := 0
	for _, draw := range draws {
		if draw.IsWellFormed() {
			complete = append(complete, draw)
		} else {
			incomplete++
		}
	}

	result = entities.ClusterResult{
		CompleteDraws:   len(complete),
		IncompleteDraws: incomplete,
		MinRequired:     s.minClusterDraws,
	}

	if len(complete) < s.minClusterDraws {
		result.Status = entities.AnalysisStatusInsufficientData
		result.Error = fmt.Sprintf("clustering needs at least %d complete draws, found %d",
			s.minClusterDraws, len(complete))
		return result
	}

	// Stable input order so identical draw sets always cluster identically.
	sort.Slice(complete, func(i, j int) bool {
		if complete[i].GameType != complete[j].GameType {
			return complete[i].GameType < complete[j].GameType
		}
		return complete[i].DrawNumber < complete[j].DrawNumber
	})

	// Encode over the widest pool present so mixed-variant windows share one
	// coordinate space.
	dim := 0
	for _, draw := range complete {
		if rules := entities.RulesFor(draw.GameType); rules != nil && rules.MaxNumber > dim {
			dim = rules.MaxNumber
		}
	}

	data := mat.NewDense(len(complete), dim, nil)
	for i, draw := range complete {
		for _, n := range draw.WinningNumbers {
			if n >= 1 && n <= dim {
				data.Set(i, n-1, 1)
			}
		}
	}

	points, err := projectPrincipalComponents(data)
	if err != nil {
		result.Status = entities.AnalysisStatusFailed
		result.Error = err.Error()
		return result
	}

	k := clusterCount
	if len(complete) < k {
		k = len(complete)
	}
	assignments := kmeans(points, k)

	members := make([][]*entities.LotteryDraw, k)
	for i, cluster := range assignments {
		members[cluster] = append(members[cluster], complete[i])
	}

	clusters := make([]entities.PatternCluster, 0, k)
	for _, group := range members {
		if len(group) == 0 {
			continue
		}
		clusters = append(clusters, entities.PatternCluster{
			Size:          len(group),
			CommonNumbers: commonNumbers(group, clusterCommonTopN),
		})
	}
	sort.Slice(clusters, func(i, j int) bool {
		if clusters[i].Size != clusters[j].Size {
			return clusters[i].Size > clusters[j].Size
		}
		return lessIntSlices(clusters[i].CommonNumbers, clusters[j].CommonNumbers)
	})
	for i := range clusters {
		clusters[i].ClusterID = i + 1
	}

	result.Status = entities.AnalysisStatusOK
	result.Clusters = clusters
	return result
}

// projectPrincipalComponents reduces the one-hot matrix to its two leading
// components (one, when the window is too small to support two).
func projectPrincipalComponents(data *mat.Dense) ([][2]float64, error) {
	rows, cols := data.Dims()

	var pc stat.PC
	if ok := pc.PrincipalComponents(data, nil); !ok {
		return nil, fmt.Errorf("principal component decomposition failed")
	}

	var vectors mat.Dense
	pc.VectorsTo(&vectors)

	_, available := vectors.Dims()
	components := 2
	if available < components {
		components = available
	}
	if components == 0 {
		return nil, fmt.Errorf("no principal components available")
	}

	var projected mat.Dense
	projected.Mul(data, vectors.Slice(0, cols, 0, components))

	points := make([][2]float64, rows)
	for i := 0; i < rows; i++ {
		points[i][0] = projected.At(i, 0)
		if components > 1 {
			points[i][1] = projected.At(i, 1)
		}
	}
	return points, nil
}

// kmeans runs Lloyd's algorithm with deterministic seeding: points sorted by
// coordinate, centroids taken at evenly spaced ranks. Ties in assignment go
// to the lowest cluster index, so identical inputs always produce identical
// clusterings.
func kmeans(points [][2]float64, k int) []int {
	order := make([]int, len(points))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		pa, pb := points[order[a]], points[order[b]]
		if pa[0] != pb[0] {
			return pa[0] < pb[0]
		}
		if pa[1] != pb[1] {
			return pa[1] < pb[1]
		}
		return order[a] < order[b]
	})

	centroids := make([][2]float64, k)
	for c := 0; c < k; c++ {
		rank := c * (len(points) - 1) / maxInt(k-1, 1)
		centroids[c] = points[order[rank]]
	}

	assignments := make([]int, len(points))
	for iter := 0; iter < kmeansMaxIterations; iter++ {
		changed := false
		for i, p := range points {
			best := 0
			bestDist := math.Inf(1)
			for c, centroid := range centroids {
				d := squaredDistance(p, centroid)
				if d < bestDist {
					bestDist = d
					best = c
				}
			}
			if assignments[i] != best {
				assignments[i] = best
				changed = true
			}
		}
		if !changed && iter > 0 {
			break
		}

		counts := make([]int, k)
		sums := make([][2]float64, k)
		for i, p := range points {
			c := assignments[i]
			counts[c]++
			sums[c][0] += p[0]
			sums[c][1] += p[1]
		}
		for c := 0; c < k; c++ {
			if counts[c] > 0 {
				centroids[c][0] = sums[c][0] / float64(counts[c])
				centroids[c][1] = sums[c][1] / float64(counts[c])
			}
		}
	}
	return assignments
}

// commonNumbers returns the topN most frequent numbers within a cluster,
// count descending with numeric tie-break ascending.
func commonNumbers(draws []*entities.LotteryDraw, topN int) []int {
	counts := make(map[int]int)
	for _, draw := range draws {
		for _, n := range draw.WinningNumbers {
			counts[n]++
		}
	}

	numbers := make([]int, 0, len(counts))
	for n := range counts {
		numbers = append(numbers, n)
	}
	sort.Slice(numbers, func(i, j int) bool {
		if counts[numbers[i]] != counts[numbers[j]] {
			return counts[numbers[i]] > counts[numbers[j]]
		}
		return numbers[i] < numbers[j]
	})

	if len(numbers) > topN {
		numbers = numbers[:topN]
	}
	return numbers
}

func squaredDistance(a, b [2]float64) float64 {
	dx := a[0] - b[0]
	dy := a[1] - b[1]
	return dx*dx + dy*dy
}

func lessIntSlices(a, b []int) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
