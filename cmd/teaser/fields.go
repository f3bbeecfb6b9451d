package main

import (
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/iwvelando/teaser/internal/catalog"
	"github.com/iwvelando/teaser/internal/listing"
	"github.com/iwvelando/teaser/pkg/constants"
	"github.com/iwvelando/teaser/pkg/output"
	"github.com/iwvelando/teaser/pkg/validation"
)

func newFieldsCmd(a *app) *cobra.Command {
	var group, typ, listingType, market, category, outputFormat string

	cmd := &cobra.Command{
		Use:   "fields",
		Short: "List the fields shown for a project classification",
		Example: `  teaser fields --group COLLECTIVE_INVESTMENT --type FUND --listing HEDGE_FUND --market PRIMARY
  teaser fields --group DIRECT_INVESTMENT --type DEBT --listing REAL_ESTATE --market SECONDARY --category guaranteeLevels`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := validation.ResolveOutputFormat(outputFormat, a.conf.Output.Format)
			if err != nil {
				return err
			}

			c := listing.Classification{
				Group:   listing.InvestmentGroup(group),
				Type:    listing.InvestmentType(typ),
				Listing: listing.ListingType(listingType),
				Market:  listing.MarketType(market),
			}
			if err := validateClassification(c); err != nil {
				return err
			}

			lists, ok := catalog.ResolveClassification(c)
			if !ok {
				return eris.Errorf("no field lists for %s/%s/%s/%s", group, typ, listingType, market)
			}

			if category != "" {
				cat := listing.Category(category)
				fields, ok := lists[cat]
				if !ok {
					return eris.Errorf("category %s does not apply to %s/%s/%s/%s", category, group, typ, listingType, market)
				}
				lists = catalog.FieldLists{cat: fields}
			}

			w := cmd.OutOrStdout()
			if format == constants.OutputFormatCSV {
				return output.FieldListsCsv(w, lists)
			}
			for i, cat := range lists.Categories() {
				if i > 0 {
					fmt.Fprintln(w)
				}
				if err := output.FieldsPretty(w, cat.Title(), lists[cat]); err != nil {
					return err
				}
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&group, "group", "", "investment group, e.g. COLLECTIVE_INVESTMENT")
	f.StringVar(&typ, "type", "", "investment type, e.g. FUND")
	f.StringVar(&listingType, "listing", "", "listing type, e.g. HEDGE_FUND")
	f.StringVar(&market, "market", "", "market type: PRIMARY or SECONDARY")
	f.StringVar(&category, "category", "", "only list this category")
	f.StringVar(&outputFormat, "output-format", "", "type of output override: pretty, csv")
	for _, name := range []string{"group", "type", "listing", "market"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}

func validateClassification(c listing.Classification) error {
	switch {
	case !c.Group.Valid():
		return fmt.Errorf("unknown investment group %q", c.Group)
	case !c.Type.Valid():
		return fmt.Errorf("unknown investment type %q", c.Type)
	case !c.Listing.Valid():
		return fmt.Errorf("unknown listing type %q", c.Listing)
	case !c.Market.Valid():
		return fmt.Errorf("unknown market type %q", c.Market)
	}
	return nil
}
