package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/pcakit/dataset"
	"github.com/katalvlaran/pcakit/pca"
	"github.com/katalvlaran/pcakit/scree"
)

// reduceCmd implements the 'pcakit reduce' command.
var reduceCmd = &cobra.Command{
	Use:   "reduce",
	Short: "Reduce a ratings CSV to its principal components",
	Long: `Run the full pipeline on a long-form ratings CSV: pivot to a dense
user-by-movie matrix, standardize, decompose the covariance matrix, and
project every user onto the selected components.

Component selection is either a fixed count (--components) or the
smallest count whose cumulative explained-variance ratio reaches a
threshold (--threshold). The two flags are mutually exclusive.

Examples:
  pcakit reduce --ratings ratings.csv --components 2
  pcakit reduce --ratings ratings.csv --movies movies.csv --threshold 0.9
  pcakit reduce --config pcakit.yaml --scree scree.png`,
	RunE: runReduce,
}

var (
	reduceRatings    string
	reduceMovies     string
	reduceComponents int
	reduceThreshold  float64
	reduceMissing    string
	reduceMinRatings int
	reduceOutput     string
	reduceScree      string
	reduceConfigPath string
)

func init() {
	rootCmd.AddCommand(reduceCmd)

	reduceCmd.Flags().StringVar(&reduceRatings, "ratings", "", "Long-form ratings CSV (userId,movieId,rating[,timestamp])")
	reduceCmd.Flags().StringVar(&reduceMovies, "movies", "", "Optional movies CSV for column titles (movieId,title[,genres])")
	reduceCmd.Flags().IntVar(&reduceComponents, "components", 0, "Keep exactly this many components")
	reduceCmd.Flags().Float64Var(&reduceThreshold, "threshold", 0, "Keep the fewest components reaching this cumulative ratio")
	reduceCmd.Flags().StringVar(&reduceMissing, "missing", "zero", "Missing-value policy: zero, mean, reject")
	reduceCmd.Flags().IntVar(&reduceMinRatings, "min-ratings", dataset.DefaultMinRatings, "Drop movies rated fewer times than this")
	reduceCmd.Flags().StringVar(&reduceOutput, "output", "", "Write the reduced matrix CSV here (default stdout)")
	reduceCmd.Flags().StringVar(&reduceScree, "scree", "", "Write a cumulative explained-variance PNG here")
	reduceCmd.Flags().StringVar(&reduceConfigPath, "config", "", "YAML file seeding the flags above")
}

// applyConfig seeds flag values from the YAML config for every flag the
// user did not set explicitly.
func applyConfig(cmd *cobra.Command, cfg *reduceConfig) {
	if !cmd.Flags().Changed("ratings") && cfg.Ratings != "" {
		reduceRatings = cfg.Ratings
	}
	if !cmd.Flags().Changed("movies") && cfg.Movies != "" {
		reduceMovies = cfg.Movies
	}
	if !cmd.Flags().Changed("components") && cfg.Components != 0 {
		reduceComponents = cfg.Components
	}
	if !cmd.Flags().Changed("threshold") && cfg.Threshold != 0 {
		reduceThreshold = cfg.Threshold
	}
	if !cmd.Flags().Changed("missing") && cfg.Missing != "" {
		reduceMissing = cfg.Missing
	}
	if !cmd.Flags().Changed("min-ratings") && cfg.MinRatings != 0 {
		reduceMinRatings = cfg.MinRatings
	}
	if !cmd.Flags().Changed("output") && cfg.Output != "" {
		reduceOutput = cfg.Output
	}
	if !cmd.Flags().Changed("scree") && cfg.Scree != "" {
		reduceScree = cfg.Scree
	}
}

func missingPolicy(name string) (pca.MissingPolicy, error) {
	switch name {
	case "zero":
		return pca.FillZero, nil
	case "mean":
		return pca.FillColumnMean, nil
	case "reject":
		return pca.RejectMissing, nil
	default:
		return 0, fmt.Errorf("unknown missing-value policy %q (want zero, mean or reject)", name)
	}
}

func selectionPolicy() (pca.SelectionPolicy, error) {
	switch {
	case reduceComponents > 0 && reduceThreshold > 0:
		return pca.SelectionPolicy{}, fmt.Errorf("--components and --threshold are mutually exclusive")
	case reduceComponents > 0:
		return pca.FixedCount(reduceComponents), nil
	case reduceThreshold > 0:
		return pca.CumulativeThreshold(reduceThreshold), nil
	default:
		return pca.CumulativeThreshold(0.9), nil
	}
}

func runReduce(cmd *cobra.Command, args []string) error {
	if reduceConfigPath != "" {
		cfg, err := loadReduceConfig(reduceConfigPath)
		if err != nil {
			return err
		}
		applyConfig(cmd, cfg)
	}
	if reduceRatings == "" {
		return fmt.Errorf("--ratings is required (flag or config file)")
	}

	missing, err := missingPolicy(reduceMissing)
	if err != nil {
		return err
	}
	policy, err := selectionPolicy()
	if err != nil {
		return err
	}

	raw, err := loadMatrix()
	if err != nil {
		return err
	}
	log.Info().
		Int("users", raw.Data.Rows()).
		Int("movies", raw.Data.Cols()).
		Msg("pivoted ratings matrix")

	res, err := pca.Fit(raw, pca.WithMissingPolicy(missing))
	if err != nil {
		return fmt.Errorf("fit: %w", err)
	}
	basis, reduced, err := res.Reduce(policy)
	if err != nil {
		return fmt.Errorf("reduce: %w", err)
	}

	cum := res.CumulativeVariance()
	log.Info().
		Int("components", basis.K).
		Float64("cumulative", cum[basis.K-1]).
		Stringer("policy", policy).
		Msg("selected components")

	if reduceScree != "" {
		opts := []scree.Option{}
		if reduceThreshold > 0 {
			opts = append(opts, scree.WithThreshold(reduceThreshold))
		}
		if err := scree.SavePNG(res.Components, reduceScree, opts...); err != nil {
			return err
		}
		log.Info().Str("path", reduceScree).Msg("wrote scree plot")
	}

	return writeReduced(reduced)
}

func loadMatrix() (*pca.RawMatrix, error) {
	f, err := os.Open(reduceRatings)
	if err != nil {
		return nil, fmt.Errorf("open ratings: %w", err)
	}
	defer f.Close()

	ratings, err := dataset.LoadRatings(f)
	if err != nil {
		return nil, err
	}

	var movies map[int]dataset.Movie
	if reduceMovies != "" {
		mf, err := os.Open(reduceMovies)
		if err != nil {
			return nil, fmt.Errorf("open movies: %w", err)
		}
		defer mf.Close()
		if movies, err = dataset.LoadMovies(mf); err != nil {
			return nil, err
		}
	}

	return dataset.Pivot(ratings, movies, dataset.WithMinRatings(reduceMinRatings))
}

// writeReduced emits the reduced matrix as CSV: a header of component ids,
// then one row per user.
func writeReduced(reduced *pca.ReducedMatrix) error {
	var out io.Writer = os.Stdout
	if reduceOutput != "" {
		f, err := os.Create(reduceOutput)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		out = f
	}

	w := csv.NewWriter(out)
	header := append([]string{"userId"}, reduced.ComponentIDs...)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	for i, id := range reduced.RowIDs {
		record := make([]string, 0, len(header))
		record = append(record, id)
		for j := 0; j < len(reduced.ComponentIDs); j++ {
			v, err := reduced.Data.At(i, j)
			if err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			record = append(record, strconv.FormatFloat(v, 'g', -1, 64))
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	if reduceOutput != "" {
		log.Info().Str("path", reduceOutput).Msg("wrote reduced matrix")
	}

	return nil
}
