/*
Copyright 2024 The stdf2atdf Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package stdf

// atdfTemplates is the static, process-wide registry of per-record ATDF
// field templates. Field order here is the ATDF field order, which
// does not match the STDF body order for every record. Each field names the
// STDF source(s) its value is transformed from; Source.IsNone()
// fields (FAR's data_file_type/atdf_version) are derived purely from record
// identity.
var atdfTemplates = map[RecordType][]AtdfFieldSpec{
	FAR: {
		{Name: "data_file_type", Source: AtdfSource{}, Required: true},
		{Name: "atdf_version", Source: AtdfSource{}, Required: true},
	},
	ATR: {
		{Name: "modification_timestamp", Source: Src("modification_timestamp"), Required: true},
		{Name: "command_line", Source: Src("command_line")},
	},
	MIR: {
		{Name: "lot_id", Source: Src("lot_id"), Required: true},
		{Name: "part_type", Source: Src("part_type")},
		{Name: "node_name", Source: Src("node_name")},
		{Name: "tester_type", Source: Src("tester_type")},
		{Name: "job_name", Source: Src("job_name")},
		{Name: "job_revision", Source: Src("job_revision")},
		{Name: "sublot_id", Source: Src("sublot_id")},
		{Name: "operator_name", Source: Src("operator_name")},
		{Name: "exec_type", Source: Src("exec_type")},
		{Name: "exec_version", Source: Src("exec_version")},
		{Name: "test_code", Source: Src("test_code")},
		{Name: "test_temperature", Source: Src("test_temperature")},
		{Name: "user_text", Source: Src("user_text")},
		{Name: "aux_file", Source: Src("aux_file")},
		{Name: "package_type", Source: Src("package_type")},
		{Name: "family_id", Source: Src("family_id")},
		{Name: "date_code", Source: Src("date_code")},
		{Name: "facility_id", Source: Src("facility_id")},
		{Name: "floor_id", Source: Src("floor_id")},
		{Name: "process_id", Source: Src("process_id")},
		{Name: "operation_frequency", Source: Src("operation_frequency")},
		{Name: "spec_name", Source: Src("spec_name")},
		{Name: "spec_version", Source: Src("spec_version")},
		{Name: "flow_id", Source: Src("flow_id")},
		{Name: "setup_id", Source: Src("setup_id")},
		{Name: "design_revision", Source: Src("design_revision")},
		{Name: "engineer_id", Source: Src("engineer_id")},
		{Name: "rom_code", Source: Src("rom_code")},
		{Name: "serial_number", Source: Src("serial_number")},
		{Name: "supervisor_name", Source: Src("supervisor_name")},
		{Name: "station_number", Source: Src("station_number")},
		{Name: "mode_code", Source: Src("mode_code")},
		{Name: "retest_code", Source: Src("retest_code")},
		{Name: "protection_code", Source: Src("protection_code")},
		{Name: "command_mode_code", Source: Src("command_mode_code")},
		{Name: "burn_in_time", Source: Src("burn_in_time")},
		{Name: "setup_time", Source: Src("setup_time"), Required: true},
		{Name: "start_time", Source: Src("start_time"), Required: true},
	},
	MRR: {
		{Name: "finish_time", Source: Src("finish_time"), Required: true},
		{Name: "disposition_code", Source: Src("disposition_code")},
		{Name: "user_description", Source: Src("user_description")},
		{Name: "exec_description", Source: Src("exec_description")},
	},
	PCR: {
		{Name: "head_number", Source: Src("head_number")},
		{Name: "site_number", Source: Src("site_number")},
		{Name: "part_count", Source: Src("part_count"), Required: true},
		{Name: "retest_count", Source: Src("retest_count")},
		{Name: "abort_count", Source: Src("abort_count")},
		{Name: "good_count", Source: Src("good_count")},
		{Name: "functional_count", Source: Src("functional_count")},
	},
	HBR: {
		{Name: "head_number", Source: Src("head_number")},
		{Name: "site_number", Source: Src("site_number")},
		{Name: "hardware_bin_number", Source: Src("hardware_bin_number"), Required: true},
		{Name: "hardware_bin_count", Source: Src("hardware_bin_count"), Required: true},
		{Name: "hardware_bin_pass_fail", Source: Src("hardware_bin_pass_fail")},
		{Name: "hardware_bin_name", Source: Src("hardware_bin_name")},
	},
	SBR: {
		{Name: "head_number", Source: Src("head_number")},
		{Name: "site_number", Source: Src("site_number")},
		{Name: "software_bin_number", Source: Src("software_bin_number"), Required: true},
		{Name: "software_bin_count", Source: Src("software_bin_count"), Required: true},
		{Name: "software_bin_pass_fail", Source: Src("software_bin_pass_fail")},
		{Name: "software_bin_name", Source: Src("software_bin_name")},
	},
	PMR: {
		{Name: "pmr_index", Source: Src("pmr_index"), Required: true},
		{Name: "channel_type", Source: Src("channel_type")},
		{Name: "channel_name", Source: Src("channel_name")},
		{Name: "physical_pin_name", Source: Src("physical_pin_name")},
		{Name: "logical_pin_name", Source: Src("logical_pin_name")},
		{Name: "head_number", Source: Src("head_number")},
		{Name: "site_number", Source: Src("site_number")},
	},
	PGR: {
		{Name: "group_index", Source: Src("group_index"), Required: true},
		{Name: "group_name", Source: Src("group_name")},
		{Name: "pin_count", Source: Src("pin_count")},
		{Name: "pin_indexes", Source: Src("pin_indexes")},
	},
	PLR: {
		{Name: "group_indexes", Source: Src("group_indexes"), Required: true},
		{Name: "group_modes", Source: Src("group_modes")},
		{Name: "radix_array", Source: Src("group_radixes")},
		{Name: "programmed_state", Source: SrcTuple("pgm_char", "pgm_chal")},
		{Name: "returned_state", Source: SrcTuple("rtn_char", "rtn_chal")},
		{Name: "mode_array", Source: Src("group_modes")},
	},
	RDR: {
		{Name: "bin_numbers", Source: Src("bin_numbers"), Required: true},
	},
	SDR: {
		{Name: "head_number", Source: Src("head_number"), Required: true},
		{Name: "site_group_number", Source: Src("site_group_number"), Required: true},
		{Name: "site_numbers", Source: Src("site_numbers"), Required: true},
		{Name: "handler_type", Source: Src("handler_type")},
		{Name: "handler_id", Source: Src("handler_id")},
		{Name: "probe_card_type", Source: Src("probe_card_type")},
		{Name: "probe_card_id", Source: Src("probe_card_id")},
		{Name: "load_board_type", Source: Src("load_board_type")},
		{Name: "load_board_id", Source: Src("load_board_id")},
		{Name: "dib_board_type", Source: Src("dib_board_type")},
		{Name: "dib_board_id", Source: Src("dib_board_id")},
		{Name: "interface_cable_type", Source: Src("interface_cable_type")},
		{Name: "interface_cable_id", Source: Src("interface_cable_id")},
		{Name: "handler_contact_type", Source: Src("handler_contact_type")},
		{Name: "handler_contact_id", Source: Src("handler_contact_id")},
		{Name: "laser_type", Source: Src("laser_type")},
		{Name: "laser_id", Source: Src("laser_id")},
		{Name: "extra_equipment_type", Source: Src("extra_equipment_type")},
		{Name: "extra_equipment_id", Source: Src("extra_equipment_id")},
	},
	WIR: {
		{Name: "head_number", Source: Src("head_number"), Required: true},
		{Name: "site_group_number", Source: Src("site_group_number")},
		{Name: "start_time", Source: Src("start_time"), Required: true},
		{Name: "wafer_id", Source: Src("wafer_id")},
	},
	WRR: {
		{Name: "head_number", Source: Src("head_number"), Required: true},
		{Name: "site_group_number", Source: Src("site_group_number")},
		{Name: "finish_time", Source: Src("finish_time"), Required: true},
		{Name: "part_count", Source: Src("part_count"), Required: true},
		{Name: "retest_count", Source: Src("retest_count")},
		{Name: "abort_count", Source: Src("abort_count")},
		{Name: "good_count", Source: Src("good_count")},
		{Name: "functional_count", Source: Src("functional_count")},
		{Name: "wafer_id", Source: Src("wafer_id")},
		{Name: "fabrication_id", Source: Src("fabrication_id")},
		{Name: "frame_id", Source: Src("frame_id")},
		{Name: "mask_id", Source: Src("mask_id")},
		{Name: "user_description", Source: Src("user_description")},
		{Name: "exec_description", Source: Src("exec_description")},
	},
	WCR: {
		{Name: "wafer_size", Source: Src("wafer_size")},
		{Name: "die_height", Source: Src("die_height")},
		{Name: "die_width", Source: Src("die_width")},
		{Name: "wafer_units", Source: Src("wafer_units")},
		{Name: "wafer_flat", Source: Src("wafer_flat")},
		{Name: "center_x", Source: Src("center_x")},
		{Name: "center_y", Source: Src("center_y")},
		{Name: "positive_x_direction", Source: Src("positive_x_direction")},
		{Name: "positive_y_direction", Source: Src("positive_y_direction")},
	},
	PIR: {
		{Name: "head_number", Source: Src("head_number"), Required: true},
		{Name: "site_number", Source: Src("site_number"), Required: true},
	},
	PRR: {
		{Name: "head_number", Source: Src("head_number"), Required: true},
		{Name: "site_number", Source: Src("site_number"), Required: true},
		{Name: "pass_fail_code", Source: Src("part_flg"), Required: true},
		{Name: "retest_code", Source: Src("part_flg")},
		{Name: "abort_code", Source: Src("part_flg")},
		{Name: "number_test", Source: Src("number_test")},
		{Name: "hardware_bin_number", Source: Src("hardware_bin_number"), Required: true},
		{Name: "software_bin_number", Source: Src("software_bin_number")},
		{Name: "x_coord", Source: Src("x_coord")},
		{Name: "y_coord", Source: Src("y_coord")},
		{Name: "test_time", Source: Src("test_time")},
		{Name: "part_id", Source: Src("part_id")},
		{Name: "part_text", Source: Src("part_text")},
		{Name: "part_fix", Source: Src("part_fix")},
	},
	TSR: {
		{Name: "head_number", Source: Src("head_number")},
		{Name: "site_number", Source: Src("site_number")},
		{Name: "test_type", Source: Src("test_type")},
		{Name: "test_number", Source: Src("test_number"), Required: true},
		{Name: "execution_count", Source: Src("execution_count")},
		{Name: "fail_count", Source: Src("fail_count")},
		{Name: "alarm_count", Source: Src("alarm_count")},
		{Name: "test_name", Source: Src("test_name")},
		{Name: "sequencer_name", Source: Src("sequencer_name")},
		{Name: "test_label", Source: Src("test_label")},
		{Name: "test_time", Source: Src("test_time")},
		{Name: "test_min", Source: Src("test_min")},
		{Name: "test_max", Source: Src("test_max")},
		{Name: "test_sum", Source: Src("test_sum")},
		{Name: "test_sum_squares", Source: Src("test_sum_squares")},
	},
	PTR: {
		{Name: "test_number", Source: Src("test_number"), Required: true},
		{Name: "head_number", Source: Src("head_number"), Required: true},
		{Name: "site_number", Source: Src("site_number"), Required: true},
		{Name: "pass_fail_flag", Source: SrcTuple("test_flg", "parm_flg"), Required: true},
		{Name: "alarm_flags", Source: SrcTuple("test_flg", "parm_flg")},
		{Name: "test_text", Source: Src("test_text")},
		{Name: "alarm_id", Source: Src("alarm_id")},
		{Name: "limit_compare", Source: Src("opt_flag")},
		{Name: "result_scale", Source: Src("result_scale")},
		{Name: "low_limit_scale", Source: Src("low_limit_scale")},
		{Name: "high_limit_scale", Source: Src("high_limit_scale")},
		{Name: "result", Source: Src("result"), Required: true},
		{Name: "low_limit", Source: Src("low_limit")},
		{Name: "high_limit", Source: Src("high_limit")},
		{Name: "units", Source: Src("units")},
		{Name: "result_format", Source: Src("result_format")},
		{Name: "low_limit_format", Source: Src("low_limit_format")},
		{Name: "high_limit_format", Source: Src("high_limit_format")},
		{Name: "low_spec_limit", Source: Src("low_spec_limit")},
		{Name: "high_spec_limit", Source: Src("high_spec_limit")},
	},
	MPR: {
		{Name: "test_number", Source: Src("test_number"), Required: true},
		{Name: "head_number", Source: Src("head_number"), Required: true},
		{Name: "site_number", Source: Src("site_number"), Required: true},
		{Name: "pass_fail_flag", Source: SrcTuple("test_flg", "parm_flg"), Required: true},
		{Name: "alarm_flags", Source: SrcTuple("test_flg", "parm_flg")},
		{Name: "test_text", Source: Src("test_text")},
		{Name: "alarm_id", Source: Src("alarm_id")},
		{Name: "limit_compare", Source: Src("opt_flag")},
		{Name: "result_scale", Source: Src("result_scale")},
		{Name: "low_limit_scale", Source: Src("low_limit_scale")},
		{Name: "high_limit_scale", Source: Src("high_limit_scale")},
		{Name: "results", Source: Src("results"), Required: true},
		{Name: "return_states", Source: Src("return_states")},
		{Name: "low_limit", Source: Src("low_limit")},
		{Name: "high_limit", Source: Src("high_limit")},
		{Name: "start_index", Source: Src("start_index")},
		{Name: "increment", Source: Src("increment")},
		{Name: "return_pin_indexes", Source: Src("return_pin_indexes")},
		{Name: "units", Source: Src("units")},
		{Name: "units_increment", Source: Src("units_increment")},
		{Name: "result_format", Source: Src("result_format")},
		{Name: "low_limit_format", Source: Src("low_limit_format")},
		{Name: "high_limit_format", Source: Src("high_limit_format")},
		{Name: "low_spec_limit", Source: Src("low_spec_limit")},
		{Name: "high_spec_limit", Source: Src("high_spec_limit")},
	},
	FTR: {
		{Name: "test_number", Source: Src("test_number"), Required: true},
		{Name: "head_number", Source: Src("head_number"), Required: true},
		{Name: "site_number", Source: Src("site_number"), Required: true},
		{Name: "pass_fail_flag", Source: Src("test_flg"), Required: true},
		{Name: "alarm_flags", Source: Src("test_flg")},
		{Name: "vector_name", Source: Src("vector_name")},
		{Name: "test_name", Source: Src("test_name")},
		{Name: "alarm_id", Source: Src("alarm_id")},
		{Name: "cycle_count", Source: Src("cycle_count")},
		{Name: "relative_address", Source: Src("relative_address")},
		{Name: "repeat_count", Source: Src("repeat_count")},
		{Name: "fail_count", Source: Src("fail_count")},
		{Name: "xfail_address", Source: Src("xfail_address")},
		{Name: "yfail_address", Source: Src("yfail_address")},
		{Name: "vector_offset", Source: Src("vector_offset")},
		{Name: "return_indexes", Source: Src("return_indexes")},
		{Name: "return_states", Source: Src("return_states")},
		{Name: "program_indexes", Source: Src("program_indexes")},
		{Name: "program_states", Source: Src("program_states")},
		{Name: "program_text", Source: Src("program_text")},
		{Name: "result_text", Source: Src("result_text")},
	},
	BPS: {
		{Name: "sequencer_name", Source: Src("sequencer_name")},
	},
	EPS: {},
	GDR: {
		{Name: "field_count", Source: Src("field_count"), Required: true},
		{Name: "generic_data", Source: Src("generic_data")},
	},
	DTR: {
		{Name: "text", Source: Src("text"), Required: true},
	},
}
