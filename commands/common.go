// Copyright 2026 Microsoft. All rights reserved.
// MIT License

package commands

import (
	"strings"

	"github.com/Azure/azure-cdn-cli/args"
	"github.com/Azure/azure-cdn-cli/registry"
)

func joinChoices(choices []string) string {
	return strings.Join(choices, ", ")
}

func nameArg(path, description string) registry.Argument {
	return registry.Argument{
		Command:     path,
		Name:        FlagName,
		Shorthand:   "n",
		Description: description,
		Type:        registry.KindString,
		Required:    true,
		Validator:   ValidateResourceName,
	}
}

func namedArg(path, name, description string) registry.Argument {
	return registry.Argument{
		Command:     path,
		Name:        name,
		Description: description,
		Type:        registry.KindString,
		Required:    true,
		Validator:   ValidateResourceName,
	}
}

func resourceGroupArg(path string) registry.Argument {
	return registry.Argument{
		Command:     path,
		Name:        FlagResourceGroup,
		Shorthand:   "g",
		Description: ResourceGroupDescription,
		Type:        registry.KindString,
		Required:    true,
	}
}

func locationArg(path string) registry.Argument {
	return registry.Argument{
		Command:     path,
		Name:        FlagLocation,
		Shorthand:   "l",
		Description: LocationDescription,
		Type:        registry.KindString,
	}
}

func profileNameArg(path string) registry.Argument {
	return namedArg(path, FlagProfileName, ProfileNameDescription)
}

func endpointNameArg(path string) registry.Argument {
	return namedArg(path, FlagEndpointName, EndpointNameDescription)
}

func policyNameArg(path string) registry.Argument {
	return namedArg(path, FlagPolicyName, WAFPolicyNameDescription)
}

func hostNameArg(path string) registry.Argument {
	return registry.Argument{
		Command:     path,
		Name:        FlagHostName,
		Description: HostNameDescription,
		Type:        registry.KindString,
		Required:    true,
	}
}

func httpPortArg(path string) registry.Argument {
	return registry.Argument{
		Command:      path,
		Name:         FlagHTTPPort,
		Description:  HTTPPortDescription,
		Type:         registry.KindInt,
		DefaultValue: args.DefaultHTTPPort,
		Parser:       ParsePort,
	}
}

func httpsPortArg(path string) registry.Argument {
	return registry.Argument{
		Command:      path,
		Name:         FlagHTTPSPort,
		Description:  HTTPSPortDescription,
		Type:         registry.KindInt,
		DefaultValue: args.DefaultHTTPSPort,
		Parser:       ParsePort,
	}
}

func originPriorityArg(path string) registry.Argument {
	return registry.Argument{
		Command:     path,
		Name:        FlagPriority,
		Description: OriginPriorityDescription + " Range: " + args.OriginPriorityRange.String() + ".",
		Type:        registry.KindInt,
		Parser:      ParseOriginPriority,
	}
}

func originWeightArg(path string) registry.Argument {
	return registry.Argument{
		Command:     path,
		Name:        FlagWeight,
		Description: OriginWeightDescription + " Range: " + args.OriginWeightRange.String() + ".",
		Type:        registry.KindInt,
		Parser:      ParseOriginWeight,
	}
}

func wafActionArg(path string) registry.Argument {
	return registry.Argument{
		Command:     path,
		Name:        FlagAction,
		Description: WAFActionDescription,
		Type:        registry.KindEnum,
		Required:    true,
		Choices:     args.WAFActions,
	}
}

func wafPriorityArg(path string) registry.Argument {
	return registry.Argument{
		Command:     path,
		Name:        FlagPriority,
		Description: WAFPriorityDescription + " Range: " + args.WAFRulePriorityRange.String() + ".",
		Type:        registry.KindInt,
		Required:    true,
		Parser:      ParseWAFRulePriority,
	}
}

func wafMatchConditionArg(path string) registry.Argument {
	return registry.Argument{
		Command:     path,
		Name:        FlagMatchCondition,
		Shorthand:   "m",
		Description: MatchConditionDescription + " Match variables: " + joinChoices(args.WAFMatchVariables) + ". Operators: " + joinChoices(args.WAFOperators) + ".",
		Type:        registry.KindList,
		Required:    true,
		Repeated:    true,
		Parser:      ParseMatchCondition,
		Validator:   ValidateMatchCondition,
	}
}

func enabledStateArg(path string) registry.Argument {
	return registry.Argument{
		Command:      path,
		Name:         FlagEnabledState,
		Description:  EnabledStateDescription,
		Type:         registry.KindEnum,
		DefaultValue: "Enabled",
		Choices:      args.EnabledStates,
	}
}
