package schema

// DefaultRegistry returns the built-in catalog of relay management tables.
// The catalog is constructed fresh on every call so callers can modify their
// copy without affecting anyone else.
func DefaultRegistry() Registry {
	return Registry{tables: []TableSpec{
		modelStatsTable(),
		pricingTable(),
		tokenTable(),
		logTable(),
		channelTable(),
		userTable(),
	}}
}

func modelStatsTable() TableSpec {
	return TableSpec{
		Name:     "model_stats",
		Endpoint: "/data/",
		Params: []Param{
			{Key: "username", Value: ""},
			{Key: "default_time", Value: "hour"},
			// start_timestamp and end_timestamp are appended at call time.
		},
		PayloadPath: "data",
		Columns: []ColumnSpec{
			{
				Name:        "model_name",
				Type:        TypeText,
				Description: "The identifier of the AI model (e.g., 'deepseek-r1', 'gpt-4o')",
				Examples:    []string{"deepseek-r1", "gpt-4o", "claude-3-7-sonnet-20250219"},
				Constraints: "Non-null, case-sensitive",
			},
			{
				Name:        "created_at",
				Type:        TypeInteger,
				Description: "Unix timestamp (in seconds) when these statistics were recorded",
				Examples:    []string{"1747130400", "1747134000"},
				Constraints: "Non-null, >= 0",
				Usage:       "Used in time range queries like 'between timestamp1 AND timestamp2'",
			},
			{
				Name:        "token_used",
				Type:        TypeInteger,
				Description: "Tokens processed by this model in this time period",
				Examples:    []string{"52889467", "6263428"},
				Constraints: "Non-null, >= 0",
				Aggregation: "Often summed over time periods to show total usage",
			},
			{
				Name:        "count",
				Type:        TypeInteger,
				Description: "Number of requests/API calls to this model in one hour (3600 seconds)",
				Examples:    []string{"19228", "4304"},
				Constraints: "Non-null, >= 0",
				Aggregation: "Often summed to show total request count",
			},
			{
				Name:        "quota",
				Type:        TypeInteger,
				Description: "The cost in quota units (divide by 500000 for USD)",
				Examples:    []string{"69189649", "9496154"},
				Constraints: "Non-null, >= 0",
				Usage:       "Often summed to show total cost",
			},
		},
		TableDescription: "Stores usage statistics and cost information for various AI language models over time. " +
			"Each record represents a model's usage metrics in 3600 seconds. Queries for rpm (requests per minute) " +
			"and tpm (tokens per minute) should be based on this table, divided by 60.",
		TimeSeriesNature: "Data is time-series with created_at timestamps. Queries often involve time ranges and aggregations.",
		CommonQueries: []string{
			"Sum of tokens used by a specific model in a time range",
			"Total request count for a model",
			"Latest quota for a model",
			"List of all unique model names",
			"Usage trends over time",
		},
		ValueRanges: map[string]string{
			"token_used": "Typically ranges from thousands to millions",
			"count":      "Typically ranges from single digits to tens of thousands",
			"quota":      "Typically ranges from millions to billions",
		},
	}
}

func pricingTable() TableSpec {
	return TableSpec{
		Name:        "pricing",
		Endpoint:    "/pricing",
		PayloadPath: "data",
		Columns: []ColumnSpec{
			{
				Name:        "model_name",
				Type:        TypeText,
				Description: "The identifier of the AI model",
				Examples:    []string{"gpt-4o", "deepseek-v3"},
				Constraints: "Non-null, case-sensitive",
			},
			{
				Name:        "quota_type",
				Type:        TypeInteger,
				Description: "Type of quota allocation for this model",
				Examples:    []string{"0", "1"},
				Constraints: "Non-null, >= 0",
			},
			{
				Name:        "model_ratio",
				Type:        TypeReal,
				Description: "Pricing ratio for this model relative to base models",
				Examples:    []string{"0.625", "37.5"},
				Constraints: "Non-null, >= 0",
				Usage:       "Higher values indicate more expensive models",
			},
			{
				Name:        "model_price",
				Type:        TypeReal,
				Description: "Direct price for this model if applicable",
				Examples:    []string{"0", "1.5"},
				Constraints: ">= 0",
			},
			{
				Name:        "owner_by",
				Type:        TypeText,
				Description: "Entity that owns this model",
				Examples:    []string{"", "openai"},
				Constraints: "Can be empty",
			},
			{
				Name:        "completion_ratio",
				Type:        TypeInteger,
				Description: "Ratio for completion tokens compared to prompt tokens",
				Examples:    []string{"1", "4"},
				Constraints: "Non-null, >= 1",
				Usage:       "For calculating the cost of completion tokens",
			},
			{
				Name:        "enable_groups",
				Type:        TypeText,
				Description: "JSON array of groups that can use this model",
				Examples:    []string{`["default"]`, `["admin","premium"]`},
				Constraints: "Non-null, stored as JSON string",
			},
		},
		TableDescription: "Contains pricing and availability information for different AI models. " +
			"Each record represents a model's pricing structure and which user groups can access it.",
		CommonQueries: []string{
			"Most expensive models by model_ratio",
			"Models available to specific user groups",
			"Models with special completion pricing",
		},
	}
}

func tokenTable() TableSpec {
	return TableSpec{
		Name:     "token",
		Endpoint: "/token/",
		Params: []Param{
			{Key: "p", Value: "0"},
			{Key: "size", Value: "100"},
		},
		PayloadPath: "data",
		Columns: []ColumnSpec{
			{
				Name:        "id",
				Type:        TypeInteger,
				Description: "Unique identifier for the token record",
				Examples:    []string{"1", "42"},
				Constraints: "Non-null, primary key",
			},
			{
				Name:        "user_id",
				Type:        TypeInteger,
				Description: "ID of the user who owns this token",
				Examples:    []string{"101", "505"},
				Constraints: "Non-null, >= 0",
			},
			{
				Name:        "key",
				Type:        TypeText,
				Description: "The token string used for API authentication",
				Examples:    []string{"Rn4Psd4qKlH29k6XqGMJvt14gYx5dXkLdeZInau2BEDKkT1H"},
				Constraints: "Non-null, unique",
			},
			{
				Name:        "status",
				Type:        TypeInteger,
				Description: "Status flag for the token (e.g., 1=active, 0=inactive)",
				Examples:    []string{"1", "0"},
				Constraints: "Non-null, 0 or 1",
			},
			{
				Name:        "name",
				Type:        TypeText,
				Description: "Name or identifier for this token",
				Examples:    []string{"test", "root"},
				Constraints: "Non-null",
			},
			{
				Name:        "created_time",
				Type:        TypeInteger,
				Description: "Unix timestamp when the token was created",
				Examples:    []string{"1741854716", "1741012223"},
				Constraints: "Non-null, >= 0",
			},
			{
				Name:        "accessed_time",
				Type:        TypeInteger,
				Description: "Unix timestamp when the token was last accessed",
				Examples:    []string{"1745387920", "1747115590"},
				Constraints: "Non-null, >= 0",
			},
			{
				Name:        "expired_time",
				Type:        TypeInteger,
				Description: "Unix timestamp when the token expires (-1 = never)",
				Examples:    []string{"-1", "1758000000"},
				Constraints: "Non-null",
			},
			{
				Name:        "remain_quota",
				Type:        TypeInteger,
				Description: "Remaining quota for this token",
				Examples:    []string{"958994", "70426382"},
				Constraints: "Non-null, >= 0",
			},
			{
				Name:        "unlimited_quota",
				Type:        TypeInteger,
				Description: "Whether this token has unlimited quota (0=false, 1=true)",
				Examples:    []string{"0", "1"},
				Constraints: "Non-null, 0 or 1",
			},
			{
				Name:        "model_limits_enabled",
				Type:        TypeInteger,
				Description: "Whether model limits are enabled for this token (0=false, 1=true)",
				Examples:    []string{"0", "1"},
				Constraints: "Non-null, 0 or 1",
			},
			{
				Name:        "model_limits",
				Type:        TypeText,
				Description: "List of models that this token is limited to",
				Examples:    []string{"", "gpt-4,gpt-3.5-turbo"},
				Constraints: "Can be empty",
			},
			{
				Name:        "allow_ips",
				Type:        TypeText,
				Description: "Comma-separated list of allowed IPs for this token",
				Examples:    []string{"", "192.168.1.1,10.0.0.1"},
				Constraints: "Can be empty",
			},
			{
				Name:        "used_quota",
				Type:        TypeInteger,
				Description: "Amount of quota used by this token",
				Examples:    []string{"58605", "29573618"},
				Constraints: "Non-null, >= 0",
			},
			{
				Name:        "user_group",
				Type:        TypeText,
				Description: "User group for this token",
				Examples:    []string{"", "default"},
				Constraints: "Can be empty",
			},
			{
				Name:        "DeletedAt",
				Type:        TypeText,
				Description: "Timestamp when this token was deleted (null if not deleted)",
				Examples:    []string{"null", "2023-05-01T12:34:56Z"},
				Constraints: "Can be null",
			},
		},
		TableDescription: "Contains API token details including usage statistics, quotas, and access controls",
		CommonQueries: []string{
			"Active tokens with remaining quota",
			"Recently used tokens",
			"Tokens with unlimited quota",
			"Tokens for specific user groups",
			"Tokens with highest usage",
		},
	}
}

func logTable() TableSpec {
	return TableSpec{
		Name:     "log",
		Endpoint: "/log/",
		Params: []Param{
			{Key: "p", Value: "1"},
			{Key: "page_size", Value: "1000"},
			{Key: "type", Value: "0"},
			{Key: "username", Value: ""},
			{Key: "token_name", Value: ""},
			{Key: "model_name", Value: ""},
			{Key: "channel", Value: ""},
			{Key: "group", Value: ""},
		},
		PayloadPath: "data.items",
		Columns: []ColumnSpec{
			{
				Name:        "id",
				Type:        TypeInteger,
				Description: "Unique identifier for the log entry",
				Examples:    []string{"144789993", "144789992"},
				Constraints: "Non-null, primary key",
			},
			{
				Name:        "user_id",
				Type:        TypeInteger,
				Description: "ID of the user who made the API call",
				Examples:    []string{"2", "101"},
				Constraints: "Non-null, >= 0",
			},
			{
				Name:        "created_at",
				Type:        TypeInteger,
				Description: "Unix timestamp when the log entry was created",
				Examples:    []string{"1747214216", "1747214215"},
				Constraints: "Non-null, >= 0",
				Usage:       "Used for filtering logs by time period",
			},
			{
				Name:        "type",
				Type:        TypeInteger,
				Description: "Type of log entry (e.g., 2=model usage)",
				Examples:    []string{"2", "1"},
				Constraints: "Non-null, >= 0",
			},
			{
				Name:        "content",
				Type:        TypeText,
				Description: "Human-readable description of the log entry",
				Constraints: "Can be empty",
			},
			{
				Name:        "username",
				Type:        TypeText,
				Description: "Username of the account that made the API call",
				Examples:    []string{"aliyun", "admin"},
				Constraints: "Non-null",
			},
			{
				Name:        "token_name",
				Type:        TypeText,
				Description: "Name of the token used for this API call",
				Examples:    []string{"aliyun-1", "aliyun"},
				Constraints: "Non-null",
			},
			{
				Name:        "model_name",
				Type:        TypeText,
				Description: "Name of the AI model used",
				Examples:    []string{"gpt-4o", "deepseek-r1", "gpt-4o-mini"},
				Constraints: "Non-null",
				Usage:       "Used for filtering usage by model",
			},
			{
				Name:        "quota",
				Type:        TypeInteger,
				Description: "Quota cost for this API call",
				Examples:    []string{"3265", "14584"},
				Constraints: "Non-null, >= 0",
				Aggregation: "Often summed to show total cost",
			},
			{
				Name:        "prompt_tokens",
				Type:        TypeInteger,
				Description: "Number of tokens in the prompt/input",
				Examples:    []string{"1884", "876"},
				Constraints: "Non-null, >= 0",
				Aggregation: "Often summed to show total input tokens",
			},
			{
				Name:        "completion_tokens",
				Type:        TypeInteger,
				Description: "Number of tokens in the completion/output",
				Examples:    []string{"182", "13039"},
				Constraints: "Non-null, >= 0",
				Aggregation: "Often summed to show total output tokens",
			},
			{
				Name:        "use_time",
				Type:        TypeInteger,
				Description: "Time taken to process this request in seconds",
				Examples:    []string{"10", "436"},
				Constraints: "Non-null, >= 0",
				Aggregation: "Often averaged to show performance",
			},
			{
				Name:        "is_stream",
				Type:        TypeInteger,
				Description: "Whether the request used streaming (0=false, 1=true)",
				Examples:    []string{"0", "1"},
				Constraints: "Non-null, 0 or 1",
			},
			{
				Name:        "channel",
				Type:        TypeInteger,
				Description: "Channel ID used for this request",
				Examples:    []string{"2", "56", "51"},
				Constraints: "Non-null, >= 0",
			},
			{
				Name:        "channel_name",
				Type:        TypeText,
				Description: "Descriptive name of the channel used",
				Constraints: "Non-null",
			},
			{
				Name:        "token_id",
				Type:        TypeInteger,
				Description: "ID of the token used for this request",
				Examples:    []string{"4", "2"},
				Constraints: "Non-null, >= 0",
			},
			{
				Name:        "user_group",
				Type:        TypeText,
				Description: "User group for this request",
				Examples:    []string{"default", "vip"},
				Constraints: "Non-null",
			},
			{
				Name:        "other",
				Type:        TypeText,
				Description: "JSON string containing additional metadata",
				Constraints: "Can be empty",
				Usage:       "Contains detailed pricing info and routing data",
			},
		},
		TableDescription: "Contains detailed logs of all AI model API calls including tokens used, " +
			"processing time, cost, and routing information",
		TimeSeriesNature: "Data is time-series with created_at timestamps. Queries often involve time ranges and aggregations.",
		CommonQueries: []string{
			"API calls by a specific user or token",
			"Usage statistics for a particular model",
			"Average response time by model or channel",
			"Cost breakdown by model, user, or time period",
			"Token usage patterns over time",
		},
		ValueRanges: map[string]string{
			"quota":             "Typically ranges from single digits to hundreds of thousands",
			"prompt_tokens":     "Typically ranges from tens to thousands",
			"completion_tokens": "Typically ranges from single digits to tens of thousands",
			"use_time":          "Typically ranges from 1 to 500 seconds",
		},
	}
}

func channelTable() TableSpec {
	return TableSpec{
		Name:     "channel",
		Endpoint: "/channel/",
		Params: []Param{
			{Key: "p", Value: "0"},
			{Key: "page_size", Value: "100"},
			{Key: "id_sort", Value: "false"},
			{Key: "tag_mode", Value: "false"},
		},
		PayloadPath: "data",
		Columns: []ColumnSpec{
			{
				Name:        "id",
				Type:        TypeInteger,
				Description: "Unique identifier for the channel",
				Examples:    []string{"58", "53", "42"},
				Constraints: "Non-null, primary key",
			},
			{
				Name:        "type",
				Type:        TypeInteger,
				Description: "Type of the channel (e.g., 1=OpenAI API, 8=Doubao API, etc.)",
				Examples:    []string{"1", "14", "45"},
				Constraints: "Non-null, >= 0",
			},
			{
				Name:        "key",
				Type:        TypeText,
				Description: "API key for the channel (typically redacted)",
				Constraints: "Can be empty",
			},
			{
				Name:        "openai_organization",
				Type:        TypeText,
				Description: "OpenAI organization ID (if applicable)",
				Constraints: "Can be empty",
			},
			{
				Name:        "test_model",
				Type:        TypeText,
				Description: "Model used for testing the channel",
				Constraints: "Can be empty",
			},
			{
				Name:        "status",
				Type:        TypeInteger,
				Description: "Status of the channel (1=active, 2=inactive, etc.)",
				Examples:    []string{"1", "2"},
				Constraints: "Non-null, >= 0",
			},
			{
				Name:        "name",
				Type:        TypeText,
				Description: "Human-readable name of the channel",
				Examples:    []string{"zmnz-gpt-all", "清风阁-grok", "上饶-claude"},
				Constraints: "Non-null",
			},
			{
				Name:        "weight",
				Type:        TypeInteger,
				Description: "Weight for load balancing (higher = more traffic)",
				Examples:    []string{"0", "7", "20"},
				Constraints: "Non-null, >= 0",
			},
			{
				Name:        "created_time",
				Type:        TypeInteger,
				Description: "Unix timestamp when the channel was created",
				Examples:    []string{"1745747749", "1744169253"},
				Constraints: "Non-null, >= 0",
			},
			{
				Name:        "test_time",
				Type:        TypeInteger,
				Description: "Unix timestamp of the most recent test",
				Examples:    []string{"1747049925", "1747211854"},
				Constraints: "Non-null, >= 0",
			},
			{
				Name:        "response_time",
				Type:        TypeInteger,
				Description: "Response time in milliseconds from the most recent test",
				Examples:    []string{"545", "15675", "85"},
				Constraints: "Non-null, >= 0",
			},
			{
				Name:        "base_url",
				Type:        TypeText,
				Description: "Base URL for API requests to this channel",
				Examples:    []string{"http://45.78.213.255", "http://38.12.5.107:3009"},
				Constraints: "Can be empty",
			},
			{
				Name:        "other",
				Type:        TypeText,
				Description: "Miscellaneous information about the channel",
				Constraints: "Can be empty",
			},
			{
				Name:        "balance",
				Type:        TypeInteger,
				Description: "Remaining balance on the channel",
				Examples:    []string{"0"},
				Constraints: "Non-null, >= 0",
			},
			{
				Name:        "balance_updated_time",
				Type:        TypeInteger,
				Description: "Unix timestamp when the balance was last updated",
				Examples:    []string{"0"},
				Constraints: "Non-null, >= 0",
			},
			{
				Name:        "models",
				Type:        TypeText,
				Description: "Comma-separated list of models available on this channel",
				Examples:    []string{"gpt-4.5-preview,chatgpt-4o-latest", "deepseek-r1,deepseek-r1-250120"},
				Constraints: "Non-null",
			},
			{
				Name:        "user_group",
				Type:        TypeText,
				Description: "User group that can access this channel",
				Examples:    []string{"default"},
				Constraints: "Non-null",
			},
			{
				Name:        "used_quota",
				Type:        TypeInteger,
				Description: "Total quota consumed by this channel",
				Examples:    []string{"114816436", "184953123174"},
				Constraints: "Non-null, >= 0",
			},
			{
				Name:        "model_mapping",
				Type:        TypeText,
				Description: "JSON mapping of model aliases to actual models",
				Constraints: "Can be empty",
			},
			{
				Name:        "status_code_mapping",
				Type:        TypeText,
				Description: "JSON mapping of status codes",
				Constraints: "Can be empty",
			},
			{
				Name:        "priority",
				Type:        TypeInteger,
				Description: "Priority of the channel in routing decisions",
				Examples:    []string{"100", "0"},
				Constraints: "Non-null, >= 0",
			},
			{
				Name:        "auto_ban",
				Type:        TypeInteger,
				Description: "Whether the channel is automatically banned on failure (0=no, 1=yes)",
				Examples:    []string{"0", "1"},
				Constraints: "Non-null, 0 or 1",
			},
			{
				Name:        "other_info",
				Type:        TypeText,
				Description: "Additional information about the channel",
				Constraints: "Can be empty",
			},
			{
				Name:        "tag",
				Type:        TypeText,
				Description: "Tag for categorizing the channel",
				Constraints: "Can be empty",
			},
			{
				Name:        "setting",
				Type:        TypeText,
				Description: "Channel-specific settings in JSON format",
				Constraints: "Can be null or empty",
			},
			{
				Name:        "param_override",
				Type:        TypeText,
				Description: "Parameter overrides in JSON format",
				Constraints: "Can be null or empty",
			},
		},
		TableDescription: "Contains information about API channels used for routing requests to various model providers",
		CommonQueries: []string{
			"Channels by response time",
			"Active vs inactive channels",
			"Channels supporting specific models",
			"Channels with highest quota usage",
		},
		ValueRanges: map[string]string{
			"response_time": "Typically ranges from tens to thousands of milliseconds",
			"used_quota":    "Typically ranges from millions to billions",
		},
	}
}

func userTable() TableSpec {
	return TableSpec{
		Name:     "user",
		Endpoint: "/user/",
		Params: []Param{
			{Key: "p", Value: "0"},
			{Key: "page_size", Value: "10"},
		},
		PayloadPath: "data.items",
		Columns: []ColumnSpec{
			{
				Name:        "id",
				Type:        TypeInteger,
				Description: "Unique identifier for the user account",
				Examples:    []string{"1", "2"},
				Constraints: "Non-null, primary key",
			},
			{
				Name:        "username",
				Type:        TypeText,
				Description: "Username for login (account name)",
				Examples:    []string{"aliyun", "root"},
				Constraints: "Non-null, unique",
			},
			{
				Name:        "password",
				Type:        TypeText,
				Description: "Password hash (typically empty in API response)",
				Constraints: "Can be empty",
			},
			{
				Name:        "display_name",
				Type:        TypeText,
				Description: "Human-readable display name",
				Examples:    []string{"阿里云", "Root User"},
				Constraints: "Non-null",
			},
			{
				Name:        "user_role",
				Type:        TypeInteger,
				Description: "User role/permission level (100=admin, 1=user)",
				Examples:    []string{"1", "100"},
				Constraints: "Non-null, >= 0",
			},
			{
				Name:        "email",
				Type:        TypeText,
				Description: "User's email address",
				Examples:    []string{"", "user@example.com"},
				Constraints: "Can be empty",
			},
			{
				Name:        "github_id",
				Type:        TypeText,
				Description: "User's GitHub ID for OAuth",
				Constraints: "Can be empty",
			},
			{
				Name:        "oidc_id",
				Type:        TypeText,
				Description: "User's OpenID Connect ID",
				Constraints: "Can be empty",
			},
			{
				Name:        "wechat_id",
				Type:        TypeText,
				Description: "User's WeChat ID",
				Constraints: "Can be empty",
			},
			{
				Name:        "telegram_id",
				Type:        TypeText,
				Description: "User's Telegram ID",
				Constraints: "Can be empty",
			},
			{
				Name:        "verification_code",
				Type:        TypeText,
				Description: "Verification code for account actions",
				Constraints: "Can be empty",
			},
			{
				Name:        "access_token",
				Type:        TypeText,
				Description: "Access token for API access",
				Constraints: "Can be null or empty",
			},
			{
				Name:        "quota",
				Type:        TypeInteger,
				Description: "Total quota allocated to this user",
				Examples:    []string{"3942948534840", "644638609"},
				Constraints: "Non-null, >= 0",
				Usage:       "Used for tracking resource allocation",
			},
			{
				Name:        "used_quota",
				Type:        TypeInteger,
				Description: "Amount of quota used by this user",
				Examples:    []string{"1356897020248", "29939633"},
				Constraints: "Non-null, >= 0",
				Usage:       "Used for tracking resource usage",
			},
			{
				Name:        "request_count",
				Type:        TypeInteger,
				Description: "Total number of API requests made by this user",
				Examples:    []string{"157004654", "1430"},
				Constraints: "Non-null, >= 0",
				Aggregation: "Often summed to show total usage",
			},
			{
				Name:        "user_group",
				Type:        TypeText,
				Description: "User group membership",
				Examples:    []string{"default"},
				Constraints: "Non-null",
			},
			{
				Name:        "aff_code",
				Type:        TypeText,
				Description: "User's affiliate code",
				Examples:    []string{"CKDY", "FJ4B"},
				Constraints: "Can be empty",
			},
			{
				Name:        "aff_count",
				Type:        TypeInteger,
				Description: "Number of users referred through affiliate program",
				Examples:    []string{"0"},
				Constraints: "Non-null, >= 0",
			},
			{
				Name:        "aff_quota",
				Type:        TypeInteger,
				Description: "Quota earned through affiliate program",
				Examples:    []string{"0"},
				Constraints: "Non-null, >= 0",
			},
			{
				Name:        "aff_history_quota",
				Type:        TypeInteger,
				Description: "Historical total of quota earned through affiliate program",
				Examples:    []string{"0"},
				Constraints: "Non-null, >= 0",
			},
			{
				Name:        "inviter_id",
				Type:        TypeInteger,
				Description: "ID of the user who invited this user",
				Examples:    []string{"0"},
				Constraints: "Non-null, >= 0",
			},
			{
				Name:        "DeletedAt",
				Type:        TypeText,
				Description: "Timestamp when this user was deleted (null if not deleted)",
				Examples:    []string{"null"},
				Constraints: "Can be null",
			},
			{
				Name:        "linux_do_id",
				Type:        TypeText,
				Description: "Linux DO ID if applicable",
				Constraints: "Can be empty",
			},
			{
				Name:        "user_setting",
				Type:        TypeText,
				Description: "User-specific settings",
				Constraints: "Can be empty or JSON",
			},
		},
		TableDescription: "Contains user account information including quota allocation and usage statistics",
		CommonQueries: []string{
			"Users with highest quota usage",
			"Admin vs regular users",
			"Users by request count",
			"Active vs inactive users",
		},
		ValueRanges: map[string]string{
			"quota":         "Typically ranges from millions to trillions",
			"used_quota":    "Typically ranges from millions to trillions",
			"request_count": "Typically ranges from hundreds to millions",
		},
	}
}
