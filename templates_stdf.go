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

// stdfTemplates is the static, process-wide registry of per-record STDF
// body templates. The three header fields (rec_len, rec_typ,
// rec_sub) are consumed by the frame reader and are not declared here; the
// decoder walks exactly these slices against a record's payload.
//
// Field names are the descriptive, lowercase counterparts of the STDF V4
// mnemonics (e.g. "head_number" for HEAD_NUM, "test_flg" for TEST_FLG) —
// kept exactly as named wherever this package's ATDF transforms name
// their STDF sources, and spelled out for readability everywhere else.
var stdfTemplates = map[RecordType][]FieldSpec{
	FAR: {
		{Name: "cpu_type", Type: DU1},
		{Name: "stdf_version", Type: DU1},
	},
	ATR: {
		{Name: "modification_timestamp", Type: DU4},
		{Name: "command_line", Type: DCf},
	},
	MIR: {
		{Name: "setup_time", Type: DU4},
		{Name: "start_time", Type: DU4},
		{Name: "station_number", Type: DU1},
		{Name: "mode_code", Type: DCn, Len: 1},
		{Name: "retest_code", Type: DCn, Len: 1},
		{Name: "protection_code", Type: DCn, Len: 1},
		{Name: "burn_in_time", Type: DU2, Missing: missingU2AtMax},
		{Name: "command_mode_code", Type: DCn, Len: 1},
		{Name: "lot_id", Type: DCf},
		{Name: "part_type", Type: DCf},
		{Name: "node_name", Type: DCf},
		{Name: "tester_type", Type: DCf},
		{Name: "job_name", Type: DCf},
		{Name: "job_revision", Type: DCf},
		{Name: "sublot_id", Type: DCf},
		{Name: "operator_name", Type: DCf},
		{Name: "exec_type", Type: DCf},
		{Name: "exec_version", Type: DCf},
		{Name: "test_code", Type: DCf},
		{Name: "test_temperature", Type: DCf},
		{Name: "user_text", Type: DCf},
		{Name: "aux_file", Type: DCf},
		{Name: "package_type", Type: DCf},
		{Name: "family_id", Type: DCf},
		{Name: "date_code", Type: DCf},
		{Name: "facility_id", Type: DCf},
		{Name: "floor_id", Type: DCf},
		{Name: "process_id", Type: DCf},
		{Name: "operation_frequency", Type: DCf},
		{Name: "spec_name", Type: DCf},
		{Name: "spec_version", Type: DCf},
		{Name: "flow_id", Type: DCf},
		{Name: "setup_id", Type: DCf},
		{Name: "design_revision", Type: DCf},
		{Name: "engineer_id", Type: DCf},
		{Name: "rom_code", Type: DCf},
		{Name: "serial_number", Type: DCf},
		{Name: "supervisor_name", Type: DCf},
	},
	MRR: {
		{Name: "finish_time", Type: DU4},
		{Name: "disposition_code", Type: DCn, Len: 1},
		{Name: "user_description", Type: DCf},
		{Name: "exec_description", Type: DCf},
	},
	PCR: {
		{Name: "head_number", Type: DU1, Missing: missingU1At255},
		{Name: "site_number", Type: DU1, Missing: missingU1At255},
		{Name: "part_count", Type: DU4, Required: true},
		{Name: "retest_count", Type: DU4, Missing: missingU4AtMax},
		{Name: "abort_count", Type: DU4, Missing: missingU4AtMax},
		{Name: "good_count", Type: DU4, Missing: missingU4AtMax},
		{Name: "functional_count", Type: DU4, Missing: missingU4AtMax},
	},
	HBR: {
		{Name: "head_number", Type: DU1, Missing: missingU1At255},
		{Name: "site_number", Type: DU1, Missing: missingU1At255},
		{Name: "hardware_bin_number", Type: DU2},
		{Name: "hardware_bin_count", Type: DU4},
		{Name: "hardware_bin_pass_fail", Type: DCn, Len: 1, Missing: missingEmptyString},
		{Name: "hardware_bin_name", Type: DCf},
	},
	SBR: {
		{Name: "head_number", Type: DU1, Missing: missingU1At255},
		{Name: "site_number", Type: DU1, Missing: missingU1At255},
		{Name: "software_bin_number", Type: DU2},
		{Name: "software_bin_count", Type: DU4},
		{Name: "software_bin_pass_fail", Type: DCn, Len: 1, Missing: missingEmptyString},
		{Name: "software_bin_name", Type: DCf},
	},
	PMR: {
		{Name: "pmr_index", Type: DU2},
		{Name: "channel_type", Type: DU2, Missing: missingU2AtMax},
		{Name: "channel_name", Type: DCf},
		{Name: "physical_pin_name", Type: DCf},
		{Name: "logical_pin_name", Type: DCf},
		{Name: "head_number", Type: DU1},
		{Name: "site_number", Type: DU1},
	},
	PGR: {
		{Name: "group_index", Type: DU2},
		{Name: "group_name", Type: DCf},
		{Name: "pin_count", Type: DU2},
		{Name: "pin_indexes", Type: arrayOf(DU2), Ref: "pin_count"},
	},
	PLR: {
		{Name: "group_count", Type: DU2},
		{Name: "group_indexes", Type: arrayOf(DU2), Ref: "group_count"},
		{Name: "group_modes", Type: arrayOf(DU2), Ref: "group_count"},
		{Name: "group_radixes", Type: arrayOf(DU1), Ref: "group_count"},
		{Name: "pgm_char", Type: arrayOf(DGc), Ref: "group_count"},
		{Name: "rtn_char", Type: arrayOf(DGc), Ref: "group_count"},
		{Name: "pgm_chal", Type: arrayOf(DGc), Ref: "group_count"},
		{Name: "rtn_chal", Type: arrayOf(DGc), Ref: "group_count"},
	},
	RDR: {
		{Name: "bin_count", Type: DU2},
		{Name: "bin_numbers", Type: arrayOf(DU2), Ref: "bin_count"},
	},
	SDR: {
		{Name: "head_number", Type: DU1},
		{Name: "site_group_number", Type: DU1},
		{Name: "site_count", Type: DU1},
		{Name: "site_numbers", Type: arrayOf(DU1), Ref: "site_count"},
		{Name: "handler_type", Type: DCf},
		{Name: "handler_id", Type: DCf},
		{Name: "probe_card_type", Type: DCf},
		{Name: "probe_card_id", Type: DCf},
		{Name: "load_board_type", Type: DCf},
		{Name: "load_board_id", Type: DCf},
		{Name: "dib_board_type", Type: DCf},
		{Name: "dib_board_id", Type: DCf},
		{Name: "interface_cable_type", Type: DCf},
		{Name: "interface_cable_id", Type: DCf},
		{Name: "handler_contact_type", Type: DCf},
		{Name: "handler_contact_id", Type: DCf},
		{Name: "laser_type", Type: DCf},
		{Name: "laser_id", Type: DCf},
		{Name: "extra_equipment_type", Type: DCf},
		{Name: "extra_equipment_id", Type: DCf},
	},
	WIR: {
		{Name: "head_number", Type: DU1},
		{Name: "site_group_number", Type: DU1, Missing: missingU1At255},
		{Name: "start_time", Type: DU4},
		{Name: "wafer_id", Type: DCf},
	},
	WRR: {
		{Name: "head_number", Type: DU1},
		{Name: "site_group_number", Type: DU1, Missing: missingU1At255},
		{Name: "finish_time", Type: DU4},
		{Name: "part_count", Type: DU4, Required: true},
		{Name: "retest_count", Type: DU4, Missing: missingU4AtMax},
		{Name: "abort_count", Type: DU4, Missing: missingU4AtMax},
		{Name: "good_count", Type: DU4, Missing: missingU4AtMax},
		{Name: "functional_count", Type: DU4, Missing: missingU4AtMax},
		{Name: "wafer_id", Type: DCf},
		{Name: "fabrication_id", Type: DCf},
		{Name: "frame_id", Type: DCf},
		{Name: "mask_id", Type: DCf},
		{Name: "user_description", Type: DCf},
		{Name: "exec_description", Type: DCf},
	},
	WCR: {
		{Name: "wafer_size", Type: DR4, Missing: missingR4AtNaN},
		{Name: "die_height", Type: DR4, Missing: missingR4AtNaN},
		{Name: "die_width", Type: DR4, Missing: missingR4AtNaN},
		{Name: "wafer_units", Type: DU1},
		{Name: "wafer_flat", Type: DCn, Len: 1},
		{Name: "center_x", Type: DI2, Missing: missingI2AtMin},
		{Name: "center_y", Type: DI2, Missing: missingI2AtMin},
		{Name: "positive_x_direction", Type: DCn, Len: 1},
		{Name: "positive_y_direction", Type: DCn, Len: 1},
	},
	PIR: {
		{Name: "head_number", Type: DU1},
		{Name: "site_number", Type: DU1},
	},
	PRR: {
		{Name: "head_number", Type: DU1},
		{Name: "site_number", Type: DU1},
		{Name: "part_flg", Type: DBit},
		{Name: "number_test", Type: DU2},
		{Name: "hardware_bin_number", Type: DU2},
		{Name: "software_bin_number", Type: DU2, Missing: missingU2AtMax},
		{Name: "x_coord", Type: DI2, Missing: missingI2AtMin},
		{Name: "y_coord", Type: DI2, Missing: missingI2AtMin},
		{Name: "test_time", Type: DU4},
		{Name: "part_id", Type: DCf},
		{Name: "part_text", Type: DCf},
		{Name: "part_fix_length", Type: DU2},
		{Name: "part_fix", Type: DBn, Ref: "part_fix_length"},
	},
	TSR: {
		{Name: "head_number", Type: DU1, Missing: missingU1At255},
		{Name: "site_number", Type: DU1, Missing: missingU1At255},
		{Name: "test_type", Type: DCn, Len: 1},
		{Name: "test_number", Type: DU4},
		{Name: "execution_count", Type: DU4, Missing: missingU4AtMax},
		{Name: "fail_count", Type: DU4, Missing: missingU4AtMax},
		{Name: "alarm_count", Type: DU4, Missing: missingU4AtMax},
		{Name: "test_name", Type: DCf},
		{Name: "sequencer_name", Type: DCf},
		{Name: "test_label", Type: DCf},
		{Name: "opt_flag", Type: DBit},
		{Name: "test_time", Type: DR4, Missing: missingR4AtNaN},
		{Name: "test_min", Type: DR4, Missing: missingR4AtNaN},
		{Name: "test_max", Type: DR4, Missing: missingR4AtNaN},
		{Name: "test_sum", Type: DR4, Missing: missingR4AtNaN},
		{Name: "test_sum_squares", Type: DR4, Missing: missingR4AtNaN},
	},
	PTR: {
		{Name: "test_number", Type: DU4},
		{Name: "head_number", Type: DU1},
		{Name: "site_number", Type: DU1},
		{Name: "test_flg", Type: DBit},
		{Name: "parm_flg", Type: DBit},
		{Name: "result", Type: DR4, Missing: missingR4AtNaN},
		{Name: "test_text", Type: DCf},
		{Name: "alarm_id", Type: DCf},
		{Name: "opt_flag", Type: DBit},
		{Name: "result_scale", Type: DI1},
		{Name: "low_limit_scale", Type: DI1},
		{Name: "high_limit_scale", Type: DI1},
		{Name: "low_limit", Type: DR4, Missing: missingR4AtNaN},
		{Name: "high_limit", Type: DR4, Missing: missingR4AtNaN},
		{Name: "units", Type: DCf},
		{Name: "result_format", Type: DCf},
		{Name: "low_limit_format", Type: DCf},
		{Name: "high_limit_format", Type: DCf},
		{Name: "low_spec_limit", Type: DR4, Missing: missingR4AtNaN},
		{Name: "high_spec_limit", Type: DR4, Missing: missingR4AtNaN},
	},
	MPR: {
		{Name: "test_number", Type: DU4},
		{Name: "head_number", Type: DU1},
		{Name: "site_number", Type: DU1},
		{Name: "test_flg", Type: DBit},
		{Name: "parm_flg", Type: DBit},
		{Name: "return_count", Type: DU2},
		{Name: "result_count", Type: DU2},
		{Name: "return_states", Type: arrayOf(DNibble), Ref: "return_count"},
		{Name: "results", Type: arrayOf(DR4), Ref: "result_count"},
		{Name: "test_text", Type: DCf},
		{Name: "alarm_id", Type: DCf},
		{Name: "opt_flag", Type: DBit},
		{Name: "result_scale", Type: DI1},
		{Name: "low_limit_scale", Type: DI1},
		{Name: "high_limit_scale", Type: DI1},
		{Name: "low_limit", Type: DR4, Missing: missingR4AtNaN},
		{Name: "high_limit", Type: DR4, Missing: missingR4AtNaN},
		{Name: "start_index", Type: DR4, Missing: missingR4AtNaN},
		{Name: "increment", Type: DR4, Missing: missingR4AtNaN},
		{Name: "return_pin_indexes", Type: arrayOf(DU2), Ref: "return_count"},
		{Name: "units", Type: DCf},
		{Name: "units_increment", Type: DCf},
		{Name: "result_format", Type: DCf},
		{Name: "low_limit_format", Type: DCf},
		{Name: "high_limit_format", Type: DCf},
		{Name: "low_spec_limit", Type: DR4, Missing: missingR4AtNaN},
		{Name: "high_spec_limit", Type: DR4, Missing: missingR4AtNaN},
	},
	FTR: {
		{Name: "test_number", Type: DU4},
		{Name: "head_number", Type: DU1},
		{Name: "site_number", Type: DU1},
		{Name: "test_flg", Type: DBit},
		{Name: "opt_flag", Type: DBit},
		{Name: "cycle_count", Type: DU4, Missing: missingU4AtMax},
		{Name: "relative_address", Type: DU4, Missing: missingU4AtMax},
		{Name: "repeat_count", Type: DU4, Missing: missingU4AtMax},
		{Name: "fail_count", Type: DU4, Missing: missingU4AtMax},
		{Name: "xfail_address", Type: DI4},
		{Name: "yfail_address", Type: DI4},
		{Name: "vector_offset", Type: DI2},
		{Name: "return_index_count", Type: DU2},
		{Name: "return_indexes", Type: arrayOf(DU2), Ref: "return_index_count"},
		{Name: "return_states", Type: arrayOf(DNibble), Ref: "return_index_count"},
		{Name: "program_index_count", Type: DU2},
		{Name: "program_indexes", Type: arrayOf(DU2), Ref: "program_index_count"},
		{Name: "program_states", Type: arrayOf(DNibble), Ref: "program_index_count"},
		{Name: "vector_name", Type: DCf},
		{Name: "test_name", Type: DCf},
		{Name: "alarm_id", Type: DCf},
		{Name: "program_text", Type: DCf},
		{Name: "result_text", Type: DCf},
	},
	BPS: {
		{Name: "sequencer_name", Type: DCf},
	},
	EPS: {},
	GDR: {
		{Name: "field_count", Type: DU2},
		{Name: "generic_data", Type: arrayOf(DVn), Ref: "field_count"},
	},
	DTR: {
		{Name: "text", Type: DCf},
	},
}
