package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Veraticus/smart-farming/internal/advisor"
	"github.com/Veraticus/smart-farming/internal/cli"
	"github.com/Veraticus/smart-farming/internal/common"
	"github.com/Veraticus/smart-farming/internal/model"
	"github.com/Veraticus/smart-farming/internal/session"
)

type adviseOptions struct {
	name        string
	province    string
	season      string
	cropStage   string
	crop        string
	offline     bool
	jsonOut     bool
	interactive bool
}

func adviseCmd() *cobra.Command {
	var opts adviseOptions

	cmd := &cobra.Command{
		Use:   "advise",
		Short: "Print recommendations for one farm profile without the UI",
		Long: `Run a single assessment from flags and print the recommendations.

Use --offline to skip the AI service and print the built-in recommendations.
Use --interactive to be asked for any profile field not given as a flag.`,
		Example: `  farm advise --name Ada --province Alberta --season Spring --stage Growing --crop Canola
  farm advise --name Ada --province Ontario --season Fall --stage Harvesting --crop Oats --offline --json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runAdvise(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.name, "name", "", "farmer name")
	cmd.Flags().StringVar(&opts.province, "province", "", "Canadian province")
	cmd.Flags().StringVar(&opts.season, "season", "", "current season (Spring, Summer, Fall, Winter)")
	cmd.Flags().StringVar(&opts.cropStage, "stage", "", "crop stage (Pre-Planting, Planting, Growing, Harvesting, Post-Harvest)")
	cmd.Flags().StringVar(&opts.crop, "crop", "", "crop (Wheat, Canola, Barley, Oats)")
	cmd.Flags().BoolVar(&opts.offline, "offline", false, "use built-in recommendations only")
	cmd.Flags().BoolVar(&opts.jsonOut, "json", false, "print the assessment as JSON")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "prompt for missing fields")

	return cmd
}

func runAdvise(cmd *cobra.Command, opts adviseOptions) error {
	sess := session.New()
	if err := sess.Navigate(session.ActionNewAssessment); err != nil {
		return err
	}

	input := session.ProfileInput{
		Name:      opts.name,
		Province:  opts.province,
		Season:    opts.season,
		CropStage: opts.cropStage,
	}
	crop := model.Crop(opts.crop)

	if opts.interactive {
		q := cli.NewQuestionnaire(cmd.InOrStdin(), cmd.OutOrStdout())
		var err error
		if input, err = q.AskProfile(cmd.Context(), input); err != nil {
			return err
		}
		if crop == "" {
			if crop, err = q.AskCrop(cmd.Context()); err != nil {
				return err
			}
		}
	}

	if err := sess.SubmitProfile(input); err != nil {
		return withValuesHint(err)
	}
	if err := sess.SelectCrop(crop); err != nil {
		return withValuesHint(err)
	}

	profile, err := sess.PendingProfile()
	if err != nil {
		return err
	}

	provider := advisor.NewProvider(nil, nil)
	if !opts.offline {
		provider, err = createAdvisor(cmd.Context())
		if err != nil {
			return err
		}
	}

	result := provider.Generate(cmd.Context(), profile)
	assessment, err := sess.Complete(profile, result)
	if err != nil {
		common.LogError(err, "failed to record assessment", common.Fields{"crop": profile.SelectedCrop})
		return err
	}

	out := cmd.OutOrStdout()
	if opts.jsonOut {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(assessment); err != nil {
			return fmt.Errorf("failed to encode assessment: %w", err)
		}
		return nil
	}

	printAssessment(out, assessment, result.Warning)
	return nil
}

// withValuesHint points the user at the accepted flag values when the
// profile or crop was rejected.
func withValuesHint(err error) error {
	if !session.IsValidationError(err) {
		return err
	}
	return common.NewUserError(common.UserMessage(err)+" (run 'farm advise --help' for accepted values)", err)
}

func printAssessment(w io.Writer, assessment model.Assessment, warning string) {
	p := assessment.Profile
	fmt.Fprintln(w, cli.FormatTitle("Your Personalized Recommendations"))
	fmt.Fprintln(w, cli.RenderBox("Profile", fmt.Sprintf("%s | %s | %s | %s | %s %s",
		p.Name, p.Province, p.Season, p.CropStage, p.SelectedCrop.Icon(), p.SelectedCrop)))

	if warning != "" {
		fmt.Fprintln(w, cli.FormatWarning(warning))
	}

	for _, category := range assessment.Recommendations.Categories() {
		fmt.Fprintf(w, "\n%s\n", cli.TitleStyle.Render(category.Icon+" "+category.Title))
		for _, tip := range category.Tips {
			fmt.Fprintf(w, "  • %s\n", tip)
		}
	}

	if warning == "" {
		fmt.Fprintln(w)
		fmt.Fprintln(w, cli.FormatSuccess("Recommendations generated successfully!"))
	}
}
