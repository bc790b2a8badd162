package banner

const termFormPage = `<html>
<head><title>Dynamic Schedule</title></head>
<body>
<div class="pagetitlediv">Dynamic Schedule</div>
<div class="pagebodydiv">
<form action="/udcprod8/NEUCLSS.p_class_select" method="post">
<input type="hidden" name="call_proc_in" value="">
<select name="STU_TERM_IN" size="10">
<option value="">None</option>
<option value="201910"> Fall 2018 Semester </option>
<option value="201930">Spring 2019 Semester</option>
<option value="201940">Summer 1 2019 Semester</option>
</select>
<input type="submit" value="Submit">
</form>
</div>
</body>
</html>`

const searchFormPage = `<html>
<head><title>Class Schedule Search</title></head>
<body>
<div class="pagebodydiv">
<form action="/udcprod8/NEUCLSS.p_class_search" method="post">
<input type="hidden" name="STU_TERM_IN" value="201910">
<input type="hidden" name="sel_subj" value="dummy">
<input type="hidden" name="sel_levl" value="dummy">
<input type="hidden" name="sel_instr" value="dummy">
<select name="sel_subj" multiple>
<option value="CS">Computer Science</option>
<option value="MATH">Mathematics</option>
<option value="PHYS">Physics</option>
</select>
<select name="sel_levl" multiple>
<option value="%" selected>All</option>
<option value="UG">Undergraduate</option>
<option value="GR">Graduate</option>
</select>
<select name="sel_instr" multiple>
<option value="%" selected>All</option>
<option value="1001">Smith, Jane</option>
<option value="1002">Doe, John</option>
<option value="1003">Doe, John</option>
<option value="1004">Lee, Alex</option>
</select>
<select name="sel_camp"><option value="%">All</option><option value="BOS">Boston</option></select>
<select name="sel_schd"><option value="%">All</option><option value="LEC">Lecture</option></select>
<select name="sel_attr"><option value="%">All</option></select>
<select name="sel_insm"><option value="%">All</option></select>
<select name="sel_ptrm"><option value="%">All</option></select>
<input type="checkbox" name="sel_day" value="m">
</form>
</div>
</body>
</html>`

// laid out the way banner's class search lays out its results
const resultsPage = `<html>
<head><title>Class Schedule Listing</title></head>
<body>
<div class="pagebodydiv">
<table class="datadisplaytable" summary="This layout table is used to present the sections found">
<caption class="captiontext">Sections Found</caption>
<tr>
<th class="ddtitle" scope="colgroup"><a href="/udcprod8/bwckschd.p_disp_detail_sched?term_in=201910&amp;crn_in=10001">Algorithms And Data - 10001 - CS 3000 - 01</a></th>
</tr>
<tr>
<td class="dddefault">
<span class="fieldlabeltext">Associated Term: </span>Fall 2018 Semester<br>
<span class="fieldlabeltext">Levels: </span>Undergraduate<br>
<span class="fieldlabeltext">Prerequisites: </span><a href="/c?crse=2510">CS 2510</a> <b>and</b> <a href="/c?crse=1800">CS 1800</a><br>
<span class="fieldlabeltext">Restrictions: </span><a href="/r">Sophomore</a><br>
<table class="datadisplaytable"><tr><th class="ddheader">Type</th></tr><tr><td class="dddefault">Class</td></tr></table>
</td>
</tr>
<tr>
<th class="ddtitle" scope="colgroup"><a href="/udcprod8/bwckschd.p_disp_detail_sched?term_in=201910&amp;crn_in=10002">Algorithms And Data - 10002 - CS 3000 - 02</a></th>
</tr>
<tr>
<td class="dddefault">
<span class="fieldlabeltext">Prerequisites: </span><a href="/c?crse=2510">CS 2510</a><br>
</td>
</tr>
<tr>
<th class="ddtitle" scope="colgroup"><a href="/udcprod8/bwckschd.p_disp_detail_sched?term_in=201910&amp;crn_in=10010">Fundamentals of Computer Science 2 - 10010 - CS 2510 - 01</a></th>
</tr>
<tr>
<td class="dddefault">
<span class="fieldlabeltext">Prerequisite: </span><a href="/c?crse=2500">CS 2500</a><br>
<span class="fieldlabeltext">Corequisites: </span><a href="/c?crse=2511">CS 2511</a><br>
</td>
</tr>
<tr>
<th class="ddtitle" scope="colgroup"><a href="/udcprod8/bwckschd.p_disp_detail_sched?term_in=201910&amp;crn_in=10011">Lab for CS 2510 - 10011 - CS 2511 - 01</a></th>
</tr>
<tr>
<td class="dddefault">
<span class="fieldlabeltext">Corequisites: </span><a href="/c?crse=2510">CS 2510</a><br>
</td>
</tr>
</table>
</div>
</body>
</html>`

const emptyResultsPage = `<html>
<head><title>Class Schedule Listing</title></head>
<body>
<div class="pagebodydiv">
<span class="warningtext">No classes were found that meet your search criteria</span>
</div>
</body>
</html>`

const notBannerPage = `<html><head><title>Maintenance</title></head><body><p>Down for maintenance</p></body></html>`
