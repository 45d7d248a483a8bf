package cli

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shenikar/complaint_analytics/internal/models"
	"github.com/spf13/cobra"
)

func newMigrateCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			applied, err := s.rt.Migrate(s.cfg.MigrationsPath, s.cfg.DatabaseURL)
			if err != nil {
				return err
			}
			if applied {
				fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "no change")
			}
			return nil
		},
	}
}

func newHeatmapCmd(s *session) *cobra.Command {
	var (
		days     int
		category string
	)
	cmd := &cobra.Command{
		Use:   "heatmap",
		Short: "Weighted complaint points for a heatmap",
		RunE: func(cmd *cobra.Command, args []string) error {
			categoryID, err := parseCategory(category)
			if err != nil {
				return err
			}
			return s.run(cmd, func(ctx context.Context, svc *Services, tenantID uuid.UUID) (any, error) {
				return svc.Analytics.Heatmap(ctx, tenantID, models.HeatmapParams{LookbackDays: days, CategoryID: categoryID})
			})
		},
	}
	cmd.Flags().IntVar(&days, "days", 0, "lookback window in days (0 = default)")
	cmd.Flags().StringVar(&category, "category", "", "category ID filter")
	return cmd
}

func newClustersCmd(s *session) *cobra.Command {
	var params models.ClusterParams
	var category string
	cmd := &cobra.Command{
		Use:   "clusters",
		Short: "Spatial clusters of open complaints",
		RunE: func(cmd *cobra.Command, args []string) error {
			categoryID, err := parseCategory(category)
			if err != nil {
				return err
			}
			params.CategoryID = categoryID
			return s.run(cmd, func(ctx context.Context, svc *Services, tenantID uuid.UUID) (any, error) {
				return svc.Analytics.Clusters(ctx, tenantID, params)
			})
		},
	}
	cmd.Flags().Float64Var(&params.RadiusKm, "radius", 0, "cluster radius in km (0 = default)")
	cmd.Flags().IntVar(&params.MinMembers, "min-members", 0, "minimum cluster size (0 = default)")
	cmd.Flags().IntVar(&params.LookbackDays, "days", 0, "lookback window in days (0 = default)")
	cmd.Flags().StringVar(&category, "category", "", "category ID filter")
	return cmd
}

func newCoverageCmd(s *session) *cobra.Command {
	var days int
	cmd := &cobra.Command{
		Use:   "coverage",
		Short: "Attention index per zone",
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.run(cmd, func(ctx context.Context, svc *Services, tenantID uuid.UUID) (any, error) {
				return svc.Analytics.ZoneCoverage(ctx, tenantID, days)
			})
		},
	}
	cmd.Flags().IntVar(&days, "days", 0, "lookback window in days (0 = default)")
	return cmd
}

func newCrewTravelCmd(s *session) *cobra.Command {
	var days int
	cmd := &cobra.Command{
		Use:   "crew-travel",
		Short: "Estimated round trip distance per crew",
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.run(cmd, func(ctx context.Context, svc *Services, tenantID uuid.UUID) (any, error) {
				return svc.Analytics.CrewTravel(ctx, tenantID, days)
			})
		},
	}
	cmd.Flags().IntVar(&days, "days", 0, "lookback window in days (0 = default)")
	return cmd
}

func newResolutionTimesCmd(s *session) *cobra.Command {
	var days int
	cmd := &cobra.Command{
		Use:   "resolution-times",
		Short: "Average and max resolution hours per category",
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.run(cmd, func(ctx context.Context, svc *Services, tenantID uuid.UUID) (any, error) {
				return svc.Analytics.CategoryResolutionTimes(ctx, tenantID, days)
			})
		},
	}
	cmd.Flags().IntVar(&days, "days", 0, "lookback window in days (0 = default)")
	return cmd
}

func newTrendCmd(s *session) *cobra.Command {
	var weeks int
	cmd := &cobra.Command{
		Use:   "trend",
		Short: "Created and resolved complaints per week",
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.run(cmd, func(ctx context.Context, svc *Services, tenantID uuid.UUID) (any, error) {
				return svc.Analytics.WeeklyTrend(ctx, tenantID, weeks)
			})
		},
	}
	cmd.Flags().IntVar(&weeks, "weeks", 0, "number of weeks (0 = default)")
	return cmd
}

func newSLASummaryCmd(s *session) *cobra.Command {
	var top int
	cmd := &cobra.Command{
		Use:   "sla-summary",
		Short: "SLA compliance summary over active complaints",
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.run(cmd, func(ctx context.Context, svc *Services, tenantID uuid.UUID) (any, error) {
				return svc.SLA.ComplianceSummary(ctx, tenantID, top)
			})
		},
	}
	cmd.Flags().IntVar(&top, "top", 0, "number of most overdue complaints (0 = default)")
	return cmd
}

func newSLAComplaintCmd(s *session) *cobra.Command {
	var id string
	cmd := &cobra.Command{
		Use:   "sla-complaint",
		Short: "SLA snapshot of a single complaint",
		RunE: func(cmd *cobra.Command, args []string) error {
			complaintID, err := uuid.Parse(id)
			if err != nil {
				return fmt.Errorf("invalid complaint ID %q: %w", id, err)
			}
			return s.run(cmd, func(ctx context.Context, svc *Services, tenantID uuid.UUID) (any, error) {
				return svc.SLA.ComplaintSLA(ctx, tenantID, complaintID)
			})
		},
	}
	cmd.Flags().StringVar(&id, "id", "", "complaint ID")
	_ = cmd.MarkFlagRequired("id")
	return cmd
}

func parseCategory(value string) (*uuid.UUID, error) {
	if value == "" {
		return nil, nil
	}
	id, err := uuid.Parse(value)
	if err != nil {
		return nil, fmt.Errorf("invalid category ID %q: %w", value, err)
	}
	return &id, nil
}
